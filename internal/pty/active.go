package pty

import "sync"

// activeRef is the single slot holding the resizable handle of the session
// currently on the terminal. At most one session is active per process; the
// resize listener is the only other reader.
type activeRef struct {
	mu   sync.Mutex
	term Terminal
}

func (a *activeRef) set(t Terminal) {
	a.mu.Lock()
	a.term = t
	a.mu.Unlock()
}

func (a *activeRef) clear() {
	a.mu.Lock()
	a.term = nil
	a.mu.Unlock()
}

// get returns the active handle, or nil when no session holds the terminal.
func (a *activeRef) get() Terminal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.term
}
