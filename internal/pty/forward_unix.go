//go:build !windows

package pty

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/hostshell/ptyexec/internal/logging"
)

// stdinPollInterval bounds how long the stdin forwarder waits for input
// before rechecking the stop flag, in milliseconds.
const stdinPollInterval = 100

// forwardStdin relays host keystrokes to the child's terminal. Input is
// polled rather than read blindly so the goroutine can notice the stop flag
// between keystrokes; the returned channel is closed when it exits.
func forwardStdin(w io.Writer, stop *atomic.Bool, log *logging.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fd := int32(os.Stdin.Fd())
		buf := make([]byte, 4096)
		for {
			if stop.Load() {
				return
			}
			fds := []unix.PollFd{{Fd: fd, Events: unix.POLLIN}}
			n, err := unix.Poll(fds, stdinPollInterval)
			if err != nil {
				if err == unix.EINTR {
					continue
				}
				log.Debug("stdin poll failed", zap.Error(err))
				return
			}
			if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
				continue
			}
			rn, rerr := unix.Read(int(fd), buf)
			if rn > 0 {
				if _, werr := w.Write(buf[:rn]); werr != nil {
					log.Debug("input write failed", zap.Error(werr))
					return
				}
			}
			if rerr != nil {
				if rerr == unix.EINTR {
					continue
				}
				log.Debug("stdin read failed", zap.Error(rerr))
				return
			}
			if rn == 0 {
				// Readable with zero bytes is end of input.
				return
			}
		}
	}()
	return done
}

// detachStdin is a teardown hook for platforms whose stdin reads cannot be
// interrupted. The polling forwarder needs none; the stop flag suffices.
func detachStdin() {}
