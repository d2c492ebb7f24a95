//go:build windows

package pty

import (
	"os/exec"
	"path/filepath"
	"strings"
)

func shellArgs(shell, command string) []string {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(shell), ".exe"))
	switch name {
	case "powershell", "pwsh":
		return []string{"-NoLogo", "-Command", command}
	default:
		return []string{"/C", command}
	}
}

// setForegroundAttrs is a no-op: the console hands control events to every
// attached process, there is no process group to manage.
func setForegroundAttrs(cmd *exec.Cmd) {
	_ = cmd
}
