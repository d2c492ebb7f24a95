//go:build windows

package pty

import (
	"errors"
	"os/exec"
)

// outcomeFromWait maps the result of exec.Cmd.Wait onto an ExitOutcome.
// Windows has no signal deaths; everything is an exit code.
func outcomeFromWait(err error) (ExitOutcome, error) {
	if err == nil {
		return Exited(0), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Exited(exitErr.ExitCode()), nil
	}
	return ExitOutcome{}, err
}
