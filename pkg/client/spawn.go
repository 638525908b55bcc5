package client

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sipeed/walletd/pkg/logger"
)

// SpawnDaemon starts `walletd daemon` as a fully detached background
// process, so the daemon outlives the client invocation that started it.
func SpawnDaemon(configPath string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	cmd := exec.Command(exe, "daemon", "--config", configPath)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	logger.InfoCF("orchestrator", "Daemon spawned", map[string]any{
		"pid":    cmd.Process.Pid,
		"config": configPath,
	})

	// Drop the handle; the daemon is not our child to wait on.
	return cmd.Process.Release()
}
