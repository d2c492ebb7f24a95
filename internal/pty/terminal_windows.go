//go:build windows

package pty

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hostshell/ptyexec/internal/term"
)

// windowsTerminal approximates a PTY with pipes: the child's stdout and
// stderr share one pipe read as the session's output, and a second pipe
// carries input. Interactive fidelity is reduced (no line discipline, no
// live resize); full-screen programs need a real ConPTY, which requires
// Windows 10 version 1809 or later.
type windowsTerminal struct {
	stdin   io.WriteCloser
	outRead *os.File
}

func newTerminal() Terminal {
	return &windowsTerminal{}
}

func (t *windowsTerminal) Start(cmd *exec.Cmd, size term.Size) error {
	outRead, outWrite, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%w: ConPTY requires Windows 10 version 1809 or later; pipe fallback failed: %v", ErrPTYUnsupported, err)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = outRead.Close()
		_ = outWrite.Close()
		return fmt.Errorf("%w: %v", ErrPTYUnsupported, err)
	}

	cmd.Stdout = outWrite
	cmd.Stderr = outWrite

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		_ = outRead.Close()
		_ = outWrite.Close()
		return err
	}

	// The child owns its copy of the write end; dropping ours lets the read
	// side see EOF when the child exits.
	_ = outWrite.Close()

	t.stdin = stdin
	t.outRead = outRead
	return nil
}

func (t *windowsTerminal) Reader() io.Reader { return t.outRead }
func (t *windowsTerminal) Writer() io.Writer { return t.stdin }

// Resize is a no-op: pipes have no window size. The initial size still
// reaches the child through COLUMNS and LINES.
func (t *windowsTerminal) Resize(term.Size) error { return nil }

func (t *windowsTerminal) Close() error {
	if t.stdin != nil {
		_ = t.stdin.Close()
		t.stdin = nil
	}
	if t.outRead != nil {
		err := t.outRead.Close()
		t.outRead = nil
		return err
	}
	return nil
}
