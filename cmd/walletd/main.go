package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sipeed/walletd/pkg/client"
	"github.com/sipeed/walletd/pkg/config"
	"github.com/sipeed/walletd/pkg/engine"
)

var (
	flagConfig string
	flagJSON   bool
)

func main() {
	root := newRootCmd()
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		// Already rendered by fail().
		os.Exit(ee.code)
	}

	// Anything else is a cobra usage problem: bad flags or arguments.
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(exitInvalidArgs)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletd",
		Short:         "Local wallet control-plane daemon and client",
		Long:          "walletd keeps mock wallet state (accounts, transactions, WalletConnect sessions)\nin a local daemon and drives it from the command line. The daemon is started\nautomatically on first use.",
		Version:       engine.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "path to the networks config file")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit a JSON envelope instead of text")

	root.AddCommand(
		newDaemonCmd(),
		newNetworksCmd(),
		newAccountsCmd(),
		newBalanceCmd(),
		newSendCmd(),
		newStatusCmd(),
		newWCCmd(),
		newVersionCmd(),
		newBuildInfoCmd(),
	)

	return root
}

// defaultConfigPath honors WALLETD_CONFIG before falling back to the
// conventional filename in the working directory.
func defaultConfigPath() string {
	if path := os.Getenv("WALLETD_CONFIG"); path != "" {
		return path
	}
	return config.DefaultPath
}

// withDaemon runs fn against a reachable daemon, auto-starting one when the
// liveness probe fails.
func withDaemon(ctx context.Context, fn func(context.Context, *client.Client) error) error {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return fail(err)
	}

	c := client.New(cfg.BaseURL())
	orch := client.NewOrchestrator(c, flagConfig)
	if err := orch.Ensure(ctx); err != nil {
		return fail(err)
	}

	return fn(ctx, c)
}
