package pty

import (
	"sync"
	"sync/atomic"

	"github.com/hostshell/ptyexec/internal/logging"
)

// Router owns process-level signal handling for command execution. While a
// PTY session is active it deliberately does nothing: the kernel line
// discipline already delivers keyboard signals to the child's foreground
// process group, and acting here too would signal the child twice. With no
// PTY active, signals are relayed to the piped foreground child's process
// group, looked up fresh at delivery time in case the child moved itself.
type Router struct {
	ptyActive  atomic.Bool
	foreground atomic.Int32
	once       sync.Once
	log        *logging.Logger
}

// Start installs the process signal handler. Idempotent; only the first
// call does anything, so any number of sessions share one handler.
func (r *Router) Start(log *logging.Logger) {
	r.once.Do(func() {
		r.log = log
		r.install()
	})
}

// SetPTYActive flips the router between PTY passthrough and piped
// forwarding mode.
func (r *Router) SetPTYActive(active bool) {
	r.ptyActive.Store(active)
}

// SetForeground records the piped foreground child to relay signals to.
func (r *Router) SetForeground(pid int) {
	r.foreground.Store(int32(pid))
}

// ClearForeground forgets the piped foreground child.
func (r *Router) ClearForeground() {
	r.foreground.Store(0)
}
