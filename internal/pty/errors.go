package pty

import (
	"errors"
	"fmt"
)

// ErrPTYUnsupported marks PTY-creation failures: the host platform lacks the
// required terminal facility (or its minimum version). Distinct from spawn
// failures so callers can print an actionable capability hint.
var ErrPTYUnsupported = errors.New("pty facility unavailable")

// SpawnError reports that the child process could not be started. It carries
// the literal command line attempted.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
