//go:build !windows

package term

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrGuardActive is returned when a second guard is acquired while one is
// already holding the terminal. Sessions do not nest.
var ErrGuardActive = errors.New("terminal guard already active")

// guardActive enforces the at-most-one-guard-per-process invariant.
var guardActive atomic.Bool

// Guard saves the host terminal attributes on acquisition and restores them
// exactly on Restore. Restore is idempotent and best-effort: it must be safe
// to call on every exit path, including error unwinding.
type Guard struct {
	fd      int
	state   *term.State
	restore sync.Once
	err     error
}

// AcquireGuard captures the current stdin attributes and switches the
// terminal to raw mode tuned for short-timeout reads (VMIN=0, VTIME=100ms),
// so a forwarder can notice a stop flag without waiting for a keystroke.
// When stdin is not a terminal there is nothing to save or restore and the
// guard is a no-op; raw mode is best-effort, never a reason to refuse to run
// the command.
func AcquireGuard() (*Guard, error) {
	if !guardActive.CompareAndSwap(false, true) {
		return nil, ErrGuardActive
	}

	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return &Guard{fd: fd}, nil
	}

	// MakeRaw leaves VMIN=1/VTIME=0 (block until one byte). Retune so raw
	// reads return after ~100ms with no input instead of blocking forever.
	if tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
		tio.Cc[unix.VMIN] = 0
		tio.Cc[unix.VTIME] = 1
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, tio)
	}

	return &Guard{fd: fd, state: state}, nil
}

// Restore puts the terminal back exactly as it was when the guard was
// acquired. Safe to call more than once; only the first call does work.
func (g *Guard) Restore() error {
	g.restore.Do(func() {
		if g.state != nil {
			g.err = term.Restore(g.fd, g.state)
		}
		guardActive.Store(false)
	})
	return g.err
}
