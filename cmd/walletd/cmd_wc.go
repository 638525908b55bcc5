package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/sipeed/walletd/pkg/client"
	"github.com/sipeed/walletd/pkg/engine"
)

func newWCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wc",
		Short: "Manage WalletConnect sessions",
	}
	cmd.AddCommand(
		newWCSessionsCmd(),
		newWCConnectCmd(),
		newWCSwitchCmd(),
		newWCDisconnectCmd(),
	)
	return cmd
}

func newWCSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List all sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				sessions, err := c.Sessions(ctx)
				if err != nil {
					return fail(err)
				}
				return emit(map[string]any{"sessions": sessions}, func() {
					if len(sessions) == 0 {
						fmt.Println("no sessions")
						return
					}
					for _, s := range sessions {
						fmt.Printf("%s  %-12s %-14s %s\n", s.ID, s.Status, s.Network, s.Address)
					}
				})
			})
		},
	}
}

func newWCConnectCmd() *cobra.Command {
	var (
		address string
		network string
		uri     string
		showQR  bool
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Open a new session for a pairing URI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				sess, err := c.Connect(ctx, address, network, uri)
				if err != nil {
					return fail(err)
				}
				return emit(sess, func() {
					fmt.Printf("session %s connected (%s on %s)\n", sess.ID, sess.Address, sess.Network)
					if showQR {
						qrterminal.GenerateHalfBlock(sess.URI, qrterminal.L, os.Stdout)
					}
				})
			})
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "wallet address (required)")
	cmd.Flags().StringVar(&network, "network", "eip155:1", "network name")
	cmd.Flags().StringVar(&uri, "uri", "", "pairing URI, must start with wc: (required)")
	cmd.Flags().BoolVar(&showQR, "qr", false, "print the pairing URI as a QR code")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("uri")

	return cmd
}

func newWCSwitchCmd() *cobra.Command {
	var (
		address string
		network string
	)

	cmd := &cobra.Command{
		Use:   "switch <session-id>",
		Short: "Change the address and/or network of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var addrPtr, netPtr *string
			if cmd.Flags().Changed("address") {
				addrPtr = &address
			}
			if cmd.Flags().Changed("network") {
				netPtr = &network
			}
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				sess, err := c.Switch(ctx, args[0], addrPtr, netPtr)
				if err != nil {
					return fail(err)
				}
				return emit(sess, func() {
					printSession(sess)
				})
			})
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "new wallet address")
	cmd.Flags().StringVar(&network, "network", "", "new network name")
	return cmd
}

func newWCDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <session-id>",
		Short: "Disconnect a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				sess, err := c.Disconnect(ctx, args[0])
				if err != nil {
					return fail(err)
				}
				return emit(sess, func() {
					printSession(sess)
				})
			})
		},
	}
}

func printSession(s *engine.Session) {
	fmt.Printf("session:  %s\nstatus:   %s\naddress:  %s\nnetwork:  %s\n", s.ID, s.Status, s.Address, s.Network)
}
