package pty

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hostshell/ptyexec/internal/config"
	"github.com/hostshell/ptyexec/internal/events"
	"github.com/hostshell/ptyexec/internal/logging"
	"github.com/hostshell/ptyexec/internal/term"
)

// Environment variables managed on every child:
//
//	SHIM_SESSION_ID, SHIM_TRACE_LOG    tracing identity, handed down
//	SHIM_PARENT_CMD_ID                 invocation that spawned the child
//	SHIM_ACTIVE, SHIM_CALLER,
//	SHIM_CALL_STACK                    per-invocation state, scrubbed so the
//	                                   child starts a fresh shim context
const (
	envSessionID   = "SHIM_SESSION_ID"
	envTraceLog    = "SHIM_TRACE_LOG"
	envParentCmdID = "SHIM_PARENT_CMD_ID"
)

var scrubbedEnvVars = []string{"SHIM_ACTIVE", "SHIM_CALLER", "SHIM_CALL_STACK"}

// Runner executes command lines on behalf of the shell, either on a
// pseudo-terminal or with plainly inherited streams. One Runner serves the
// whole process; its signal router and resize listener are installed once
// and shared by every session.
type Runner struct {
	cfg      *config.Config
	log      *logging.Logger
	notifier events.Notifier

	active     activeRef
	router     Router
	resizeOnce sync.Once
}

// NewRunner builds a Runner. A nil notifier discards lifecycle events.
func NewRunner(cfg *config.Config, log *logging.Logger, notifier events.Notifier) *Runner {
	if log == nil {
		log = logging.NewNop()
	}
	if notifier == nil {
		notifier = events.NopNotifier{}
	}
	return &Runner{cfg: cfg, log: log, notifier: notifier}
}

// Run executes command on a pseudo-terminal and blocks until the child
// exits. The host terminal is switched to raw mode for the duration and
// restored on every exit path. Creation failures come back wrapping
// ErrPTYUnsupported; spawn failures come back as *SpawnError.
func (r *Runner) Run(command, invocationID string) (ExitOutcome, error) {
	r.router.Start(r.log)
	r.startResizeListener()

	guard, err := term.AcquireGuard()
	if err != nil {
		return ExitOutcome{}, err
	}
	defer func() {
		_ = guard.Restore()
	}()

	size := term.QuerySize()
	r.log.Debug("starting pty session",
		zap.String("cmd_id", invocationID),
		zap.Uint16("rows", size.Rows),
		zap.Uint16("cols", size.Cols),
	)

	cmd := r.buildCommand(command, invocationID, size, true)
	t := newTerminal()
	if err := t.Start(cmd, size); err != nil {
		if errors.Is(err, ErrPTYUnsupported) {
			return ExitOutcome{}, err
		}
		return ExitOutcome{}, &SpawnError{Command: command, Err: err}
	}

	r.router.SetPTYActive(true)
	r.active.set(t)

	r.notifier.CommandStarted(events.Started{
		InvocationID: invocationID,
		SessionID:    r.cfg.SessionID,
		Command:      command,
		PTY:          true,
		Rows:         size.Rows,
		Cols:         size.Cols,
	})
	start := time.Now()

	var stop atomic.Bool
	outDone := forwardOutput(t.Reader(), &stop, r.log)
	inDone := forwardStdin(t.Writer(), &stop, r.log)

	outcome, waitErr := outcomeFromWait(cmd.Wait())

	// Teardown order: raise the stop flag, give the child's final output a
	// moment to drain, join the forwarders, drop the active reference, then
	// put the terminal back. Restoring before the forwarders stop would let
	// a late read re-disturb the restored terminal.
	stop.Store(true)
	time.Sleep(outputDrainDelay)
	_ = t.Close()
	<-outDone
	detachStdin()
	<-inDone

	r.active.clear()
	r.router.SetPTYActive(false)
	if err := guard.Restore(); err != nil {
		r.log.Warn("failed to restore terminal attributes", zap.Error(err))
	}

	if waitErr != nil {
		return ExitOutcome{}, waitErr
	}

	duration := time.Since(start)
	code, exited := outcome.Exited()
	sig, _ := outcome.Signal()
	r.notifier.CommandCompleted(events.Completed{
		InvocationID: invocationID,
		SessionID:    r.cfg.SessionID,
		Command:      command,
		Duration:     duration,
		PTY:          true,
		ExitCode:     code,
		Signaled:     !exited,
		Signal:       sig,
	})
	return outcome, nil
}

// RunPiped executes command with the host's standard streams attached
// directly, for commands that neither need nor want a terminal. The child
// gets its own process group so the signal router can relay to it.
func (r *Runner) RunPiped(command, invocationID string) (ExitOutcome, error) {
	r.router.Start(r.log)

	cmd := r.buildCommand(command, invocationID, term.Size{}, false)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setForegroundAttrs(cmd)

	if err := cmd.Start(); err != nil {
		return ExitOutcome{}, &SpawnError{Command: command, Err: err}
	}

	r.router.SetForeground(cmd.Process.Pid)
	defer r.router.ClearForeground()

	r.notifier.CommandStarted(events.Started{
		InvocationID: invocationID,
		SessionID:    r.cfg.SessionID,
		Command:      command,
	})
	start := time.Now()

	outcome, waitErr := outcomeFromWait(cmd.Wait())
	if waitErr != nil {
		return ExitOutcome{}, waitErr
	}

	duration := time.Since(start)
	code, exited := outcome.Exited()
	sig, _ := outcome.Signal()
	r.notifier.CommandCompleted(events.Completed{
		InvocationID: invocationID,
		SessionID:    r.cfg.SessionID,
		Command:      command,
		Duration:     duration,
		ExitCode:     code,
		Signaled:     !exited,
		Signal:       sig,
	})
	return outcome, nil
}

// buildCommand assembles the exec.Cmd for a command line: shell -c
// invocation, working directory, and the managed environment.
func (r *Runner) buildCommand(command, invocationID string, size term.Size, ptyMode bool) *exec.Cmd {
	shell := r.cfg.Shell
	cmd := exec.Command(shell, shellArgs(shell, command)...)
	if r.cfg.WorkingDir != "" {
		cmd.Dir = r.cfg.WorkingDir
	}

	env := scrubEnv(os.Environ(), scrubbedEnvVars...)
	env = setEnv(env, envSessionID, r.cfg.SessionID)
	if r.cfg.TraceLogFile != "" {
		env = setEnv(env, envTraceLog, r.cfg.TraceLogFile)
	}
	env = setEnv(env, envParentCmdID, invocationID)
	if ptyMode {
		if !envPresent(env, "TERM") {
			env = setEnv(env, "TERM", "xterm-256color")
		}
		if size.Valid() {
			env = setEnv(env, "COLUMNS", strconv.Itoa(int(size.Cols)))
			env = setEnv(env, "LINES", strconv.Itoa(int(size.Rows)))
		}
	}
	cmd.Env = env
	return cmd
}

func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func scrubEnv(env []string, keys ...string) []string {
	out := env[:0]
	for _, kv := range env {
		drop := false
		for _, key := range keys {
			if strings.HasPrefix(kv, key+"=") {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kv)
		}
	}
	return out
}

func envPresent(env []string, key string) bool {
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			return true
		}
	}
	return false
}
