//go:build windows

package term

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// ErrGuardActive is returned when a second guard is acquired while one is
// already holding the terminal. Sessions do not nest.
var ErrGuardActive = errors.New("terminal guard already active")

var guardActive atomic.Bool

// Guard saves the console input mode on acquisition and restores it exactly
// on Restore. Only stdin is touched; stdout is left alone so the child's
// output is not disturbed.
type Guard struct {
	handle  windows.Handle
	mode    uint32
	saved   bool
	restore sync.Once
	err     error
}

// AcquireGuard disables line input, echo, and input processing on the
// console and enables virtual-terminal input so keystrokes reach the child
// unmodified.
func AcquireGuard() (*Guard, error) {
	if !guardActive.CompareAndSwap(false, true) {
		return nil, ErrGuardActive
	}

	g := &Guard{}

	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		// Not attached to a console; nothing to save or restore.
		return g, nil
	}
	g.handle = h

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return g, nil
	}
	g.mode = mode
	g.saved = true

	raw := mode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	raw |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(h, raw); err != nil {
		// Console refused the raw mode; run with cooked input rather than
		// refusing to run the command.
		g.saved = false
	}

	return g, nil
}

// Restore puts the console input mode back exactly as it was when the guard
// was acquired. Safe to call more than once.
func (g *Guard) Restore() error {
	g.restore.Do(func() {
		if g.saved {
			g.err = windows.SetConsoleMode(g.handle, g.mode)
		}
		guardActive.Store(false)
	})
	return g.err
}
