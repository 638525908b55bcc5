package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sipeed/walletd/pkg/config"
	"github.com/sipeed/walletd/pkg/daemon"
	"github.com/sipeed/walletd/pkg/engine"
	"github.com/sipeed/walletd/pkg/logger"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the control-plane daemon in the foreground",
		Long:  "Runs the daemon that owns all wallet state. Normally started automatically\nby other commands; run it directly to watch its logs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(flagConfig)
			if err != nil {
				return fail(err)
			}
			logger.SetLevel(cfg.LogLevel)

			eng := engine.New(cfg.Networks)
			srv := daemon.New(cfg, eng)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				logger.InfoC("daemon", "Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			// A bind failure here usually means a concurrently started
			// sibling won the port; exiting is the correct outcome.
			if err := srv.ListenAndServe(); err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
