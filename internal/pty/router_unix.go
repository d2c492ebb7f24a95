//go:build !windows

package pty

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func (r *Router) install() {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go r.loop(ch)
}

func (r *Router) loop(ch <-chan os.Signal) {
	for s := range ch {
		sig, ok := s.(syscall.Signal)
		if !ok {
			continue
		}
		if r.ptyActive.Load() {
			r.log.Debug("signal handled by pty line discipline", zap.String("signal", sig.String()))
			continue
		}
		if pid := int(r.foreground.Load()); pid > 0 {
			// Query the group at delivery time; the child may have called
			// setpgid since we spawned it.
			if pgid, err := unix.Getpgid(pid); err == nil {
				_ = unix.Kill(-pgid, sig)
			}
		}
		switch sig {
		case syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP:
			// The wrapper itself was told to die; relay first, then follow
			// shell convention for our own exit code.
			os.Exit(128 + int(sig))
		}
	}
}
