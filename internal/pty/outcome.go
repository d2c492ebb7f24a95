package pty

import "fmt"

// ExitOutcome is the result of one command execution: either a normal exit
// code or the number of the signal that terminated the child. The two are
// never conflated.
type ExitOutcome struct {
	code     int
	signal   int
	signaled bool
}

// Exited builds an outcome for a child that exited normally.
func Exited(code int) ExitOutcome {
	return ExitOutcome{code: code}
}

// Signaled builds an outcome for a child terminated by a signal.
func Signaled(sig int) ExitOutcome {
	return ExitOutcome{signal: sig, signaled: true}
}

// Exited returns the exit code; ok is false when the child was terminated by
// a signal instead.
func (o ExitOutcome) Exited() (code int, ok bool) {
	return o.code, !o.signaled
}

// Signal returns the terminating signal number; ok is false when the child
// exited normally.
func (o ExitOutcome) Signal() (sig int, ok bool) {
	return o.signal, o.signaled
}

// Success reports a normal zero exit.
func (o ExitOutcome) Success() bool {
	return !o.signaled && o.code == 0
}

// ShellCode maps the outcome onto the conventional shell exit code:
// 128+signal for signal deaths, the exit code otherwise.
func (o ExitOutcome) ShellCode() int {
	if o.signaled {
		return 128 + o.signal
	}
	return o.code
}

func (o ExitOutcome) String() string {
	if o.signaled {
		return fmt.Sprintf("signaled(%d)", o.signal)
	}
	return fmt.Sprintf("exited(%d)", o.code)
}
