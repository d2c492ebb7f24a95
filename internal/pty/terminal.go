package pty

import (
	"io"
	"os/exec"

	"github.com/hostshell/ptyexec/internal/term"
)

// Terminal is the platform pseudo-terminal capability: start a child attached
// to the subordinate side, read its output and write its input through the
// controlling side, and resize the window. Close releases the controlling
// side and unblocks any pending read.
type Terminal interface {
	// Start opens the terminal at the given size and spawns cmd attached to
	// it. Creation failures are reported as ErrPTYUnsupported wrappers;
	// anything after a successful open is a spawn failure.
	Start(cmd *exec.Cmd, size term.Size) error

	Reader() io.Reader
	Writer() io.Writer

	Resize(size term.Size) error
	Close() error
}
