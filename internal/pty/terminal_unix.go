//go:build !windows

package pty

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"

	"github.com/hostshell/ptyexec/internal/term"
)

// unixTerminal is a real PTY pair. The child runs in its own session with
// the subordinate side as its controlling terminal, so the kernel line
// discipline delivers keyboard signals to the child's process group.
type unixTerminal struct {
	ptmx *os.File
}

func newTerminal() Terminal {
	return &unixTerminal{}
}

func (t *unixTerminal) Start(cmd *exec.Cmd, size term.Size) error {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPTYUnsupported, err)
	}

	if size.Valid() {
		_ = pty.Setsize(ptmx, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	}

	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true
	cmd.SysProcAttr.Setctty = true

	if err := cmd.Start(); err != nil {
		_ = tty.Close()
		_ = ptmx.Close()
		return err
	}

	// The child holds its own descriptors for the subordinate side now.
	// Closing ours lets reads on the controlling side return once the child
	// exits instead of hanging on our copy.
	_ = tty.Close()

	t.ptmx = ptmx
	return nil
}

func (t *unixTerminal) Reader() io.Reader { return t.ptmx }
func (t *unixTerminal) Writer() io.Writer { return t.ptmx }

func (t *unixTerminal) Resize(size term.Size) error {
	if t.ptmx == nil {
		return nil
	}
	return pty.Setsize(t.ptmx, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

func (t *unixTerminal) Close() error {
	if t.ptmx == nil {
		return nil
	}
	err := t.ptmx.Close()
	t.ptmx = nil
	return err
}
