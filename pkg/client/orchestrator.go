package client

import (
	"context"
	"fmt"
	"time"

	"github.com/sipeed/walletd/pkg/logger"
)

const (
	// DefaultProbeTimeout bounds a single liveness probe.
	DefaultProbeTimeout = 500 * time.Millisecond
	// DefaultPollInterval is the delay between readiness probes after a spawn.
	DefaultPollInterval = 250 * time.Millisecond
	// DefaultStartTimeout bounds the whole auto-start sequence.
	DefaultStartTimeout = 8 * time.Second
)

// Orchestrator makes sure a daemon is reachable before a command runs:
// probe, spawn a detached daemon if the probe fails, then poll until ready
// or timeout. Two clients racing to auto-start may both spawn; the losing
// daemon fails to bind the fixed port and exits, and the race still counts
// as success here as long as some daemon answers the probe in time.
type Orchestrator struct {
	Client *Client

	// Spawn launches the daemon process. Overridable in tests.
	Spawn func() error

	ProbeTimeout time.Duration
	PollInterval time.Duration
	StartTimeout time.Duration
}

func NewOrchestrator(c *Client, configPath string) *Orchestrator {
	return &Orchestrator{
		Client:       c,
		Spawn:        func() error { return SpawnDaemon(configPath) },
		ProbeTimeout: DefaultProbeTimeout,
		PollInterval: DefaultPollInterval,
		StartTimeout: DefaultStartTimeout,
	}
}

// Ensure returns nil once the daemon answers the liveness probe, spawning
// one if needed. It is cancellable through ctx; process termination aborts
// the polling loop.
func (o *Orchestrator) Ensure(ctx context.Context) error {
	if o.Client.Probe(ctx, o.ProbeTimeout) {
		return nil
	}

	logger.InfoC("orchestrator", "Daemon not running, starting it")
	if err := o.Spawn(); err != nil {
		return fmt.Errorf("spawn daemon: %w", err)
	}

	deadline := time.NewTimer(o.StartTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(o.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("daemon did not become ready within %s", o.StartTimeout)
		case <-ticker.C:
			if o.Client.Probe(ctx, o.ProbeTimeout) {
				return nil
			}
		}
	}
}
