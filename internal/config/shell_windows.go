//go:build windows

package config

import (
	"os"
	"os/exec"
)

// DetectShell finds the default interpreter on Windows, preferring
// PowerShell over cmd.exe.
func DetectShell() (string, error) {
	psPath := `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`
	if _, err := os.Stat(psPath); err == nil {
		return psPath, nil
	}

	cmdPath := `C:\Windows\System32\cmd.exe`
	if _, err := os.Stat(cmdPath); err == nil {
		return cmdPath, nil
	}

	if ps, err := exec.LookPath("powershell.exe"); err == nil {
		return ps, nil
	}
	if cmd, err := exec.LookPath("cmd.exe"); err == nil {
		return cmd, nil
	}

	return `C:\Windows\System32\cmd.exe`, nil
}
