//go:build windows

package pty

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hostshell/ptyexec/internal/logging"
)

// Console reads cannot be cancelled on Windows, so a single process-wide
// goroutine owns stdin for the life of the process. It parks on a condition
// variable between sessions and hands bytes to whichever session currently
// holds the terminal.
var stdinGate = struct {
	once sync.Once
	mu   sync.Mutex
	cond *sync.Cond
	w    io.Writer
}{}

func forwardStdin(w io.Writer, stop *atomic.Bool, log *logging.Logger) <-chan struct{} {
	stdinGate.once.Do(func() {
		stdinGate.cond = sync.NewCond(&stdinGate.mu)
		go stdinLoop(log)
	})

	stdinGate.mu.Lock()
	stdinGate.w = w
	stdinGate.mu.Unlock()
	stdinGate.cond.Signal()

	// There is no per-session goroutine to join; teardown detaches the
	// writer instead.
	done := make(chan struct{})
	close(done)
	return done
}

// detachStdin parks the process-wide forwarder until the next session.
func detachStdin() {
	stdinGate.mu.Lock()
	stdinGate.w = nil
	stdinGate.mu.Unlock()
}

func stdinLoop(log *logging.Logger) {
	buf := make([]byte, 4096)
	for {
		stdinGate.mu.Lock()
		for stdinGate.w == nil {
			stdinGate.cond.Wait()
		}
		stdinGate.mu.Unlock()

		n, err := os.Stdin.Read(buf)
		if n > 0 {
			stdinGate.mu.Lock()
			cur := stdinGate.w
			stdinGate.mu.Unlock()
			if cur != nil {
				if _, werr := cur.Write(buf[:n]); werr != nil {
					// The session's pipe is gone; drop the bytes and park.
					detachStdin()
				}
			}
		}
		if err != nil {
			log.Debug("stdin closed")
			return
		}
	}
}
