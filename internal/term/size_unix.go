//go:build !windows

package term

import (
	"os"

	"golang.org/x/term"
)

// QuerySize returns the host terminal size. /dev/tty is consulted first
// since it always refers to the controlling terminal even when stdio is
// redirected, then stdin, stdout, and stderr in order, then the
// LINES/COLUMNS environment variables, then fixed defaults. Zero-sized
// answers are rejected at every step.
func QuerySize() Size {
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer tty.Close()
		if s, ok := fdSize(int(tty.Fd())); ok {
			return s
		}
	}

	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if s, ok := fdSize(int(f.Fd())); ok {
			return s
		}
	}

	return envSize()
}

func fdSize(fd int) (Size, bool) {
	if !term.IsTerminal(fd) {
		return Size{}, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || rows <= 0 || cols <= 0 {
		return Size{}, false
	}
	return Size{Rows: uint16(rows), Cols: uint16(cols)}, true
}
