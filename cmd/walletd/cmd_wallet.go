package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sipeed/walletd/pkg/client"
	"github.com/sipeed/walletd/pkg/engine"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks the daemon was started with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				networks, err := c.Networks(ctx)
				if err != nil {
					return fail(err)
				}
				return emit(map[string]any{"networks": networks}, func() {
					for _, n := range networks {
						fmt.Printf("%-16s %s\n", n.Name, n.RPCURL)
					}
				})
			})
		},
	}
}

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List wallet accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				accounts, err := c.Accounts(ctx)
				if err != nil {
					return fail(err)
				}
				return emit(map[string]any{"accounts": accounts}, func() {
					for _, a := range accounts {
						fmt.Printf("%s  %-8s %s\n", a.Address, a.Label, strings.Join(a.Networks, ", "))
					}
				})
			})
		},
	}
}

func newBalanceCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balance of an address on a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				result, err := c.Balance(ctx, args[0], network)
				if err != nil {
					return fail(err)
				}
				return emit(result, func() {
					fmt.Printf("%s ETH\n", result.BalanceETH)
				})
			})
		},
	}

	cmd.Flags().StringVar(&network, "network", "eip155:1", "network name (eip155:<chain-id>)")
	return cmd
}

func newSendCmd() *cobra.Command {
	var (
		req   engine.TxRequest
		nonce float64
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a mock transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("nonce") {
				req.Nonce = &nonce
			}
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				result, err := c.SendTransaction(ctx, req)
				if err != nil {
					return fail(err)
				}
				return emit(result, func() {
					fmt.Printf("%s  %s\n", result.GUID, result.Status)
				})
			})
		},
	}

	cmd.Flags().StringVar(&req.Network, "network", "eip155:1", "network name")
	cmd.Flags().StringVar(&req.From, "from", "", "sender address (required)")
	cmd.Flags().StringVar(&req.To, "to", "", "recipient address")
	cmd.Flags().StringVar(&req.Contract, "contract", "", "contract address")
	cmd.Flags().StringVar(&req.Value, "value", "", "amount to send")
	cmd.Flags().StringVar(&req.Data, "data", "", "hex calldata (0x...)")
	cmd.Flags().StringVar(&req.GasPrice, "gas-price", "", "gas price")
	cmd.Flags().Float64Var(&nonce, "nonce", 0, "transaction nonce")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <guid>",
		Short: "Query the status of a sent transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				result, err := c.TransactionStatus(ctx, args[0])
				if err != nil {
					return fail(err)
				}
				return emit(result, func() {
					fmt.Println(result.Status)
				})
			})
		},
	}
}
