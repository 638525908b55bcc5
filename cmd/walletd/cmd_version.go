package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sipeed/walletd/pkg/client"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the running daemon's version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				version, err := c.Version(ctx)
				if err != nil {
					return fail(err)
				}
				return emit(map[string]string{"version": version}, func() {
					fmt.Println(version)
				})
			})
		},
	}
}

func newBuildInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Show the running daemon's build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				info, err := c.BuildInfo(ctx)
				if err != nil {
					return fail(err)
				}
				return emit(info, func() {
					fmt.Printf("version:   %s\nplatform:  %s\nruntime:   %s\nbuild:     %s\n", info.Version, info.Platform, info.Runtime, info.BuildTime)
					if info.VCSRevision != "" {
						fmt.Printf("revision:  %s\n", info.VCSRevision)
					}
				})
			})
		},
	}
}
