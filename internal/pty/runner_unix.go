//go:build !windows

package pty

import (
	"os/exec"
	"syscall"
)

func shellArgs(shell, command string) []string {
	_ = shell
	return []string{"-c", command}
}

// setForegroundAttrs gives a piped child its own process group so signals
// can be relayed to the whole group without hitting the wrapper.
func setForegroundAttrs(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}
