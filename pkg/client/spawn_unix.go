//go:build unix

package client

import "syscall"

// detachAttr puts the daemon in its own session so it survives the client's
// terminal and process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
