//go:build windows

package term

import (
	"os"

	"golang.org/x/term"
)

// QuerySize returns the console size, falling back to LINES/COLUMNS and then
// fixed defaults when stdout is not attached to a console.
func QuerySize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		cols, rows, err := term.GetSize(fd)
		if err == nil && rows > 0 && cols > 0 {
			return Size{Rows: uint16(rows), Cols: uint16(cols)}
		}
	}
	return envSize()
}
