//go:build windows

package pty

import (
	"os"
	"os/signal"
)

func (r *Router) install() {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, os.Interrupt)
	go r.loop(ch)
}

func (r *Router) loop(ch <-chan os.Signal) {
	for range ch {
		// The console delivers Ctrl+C to every process attached to it, so
		// the child has already received it. The wrapper only has to decline
		// to die while a command is running.
		r.log.Debug("interrupt passed to console group")
	}
}
