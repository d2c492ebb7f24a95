package pty

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hostshell/ptyexec/internal/logging"
)

// outputDrainDelay is how long teardown waits after the child exits before
// joining the output forwarder, so full-screen programs get their final
// screen-restore sequences onto the host terminal.
const outputDrainDelay = 50 * time.Millisecond

// forwardOutput copies child output to the host stdout until the stream
// ends. The returned channel is closed once the copier has drained and
// exited.
func forwardOutput(r io.Reader, stop *atomic.Bool, log *logging.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 32*1024)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if _, werr := os.Stdout.Write(buf[:n]); werr != nil {
					log.Debug("stdout write failed", zap.Error(werr))
					return
				}
			}
			if err != nil {
				// The controlling side reports EIO once the child closes the
				// subordinate side; like EOF it simply ends the stream.
				if !stop.Load() && err != io.EOF {
					log.Debug("output stream closed", zap.Error(err))
				}
				return
			}
		}
	}()
	return done
}
