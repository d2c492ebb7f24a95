//go:build !windows

package pty

import (
	"errors"
	"os/exec"
	"syscall"
)

// outcomeFromWait maps the result of exec.Cmd.Wait onto an ExitOutcome.
// Signal deaths and exit codes are kept distinct; errors unrelated to the
// child's termination status pass through.
func outcomeFromWait(err error) (ExitOutcome, error) {
	if err == nil {
		return Exited(0), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return Signaled(int(ws.Signal())), nil
			}
			return Exited(ws.ExitStatus()), nil
		}
		return Exited(exitErr.ExitCode()), nil
	}
	return ExitOutcome{}, err
}
