//go:build !windows

package pty

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hostshell/ptyexec/internal/term"
)

// startResizeListener subscribes to SIGWINCH and propagates the host's new
// size to whichever session is active when the signal lands. Installed once
// per Runner; notifications with no active session are dropped, and the next
// session picks up the current size when it starts.
func (r *Runner) startResizeListener() {
	r.resizeOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGWINCH)
		go func() {
			for range ch {
				t := r.active.get()
				if t == nil {
					continue
				}
				size := term.QuerySize()
				if !size.Valid() {
					continue
				}
				if err := t.Resize(size); err != nil {
					r.log.Debug("resize failed", zap.Error(err))
					continue
				}
				r.log.Debug("propagated resize",
					zap.Uint16("rows", size.Rows),
					zap.Uint16("cols", size.Cols),
				)
			}
		}()
	})
}
