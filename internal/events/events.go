package events

import (
	"time"

	"go.uber.org/zap"

	"github.com/hostshell/ptyexec/internal/logging"
)

// Started describes a command that has begun executing.
type Started struct {
	InvocationID string
	SessionID    string
	Command      string
	PTY          bool
	Rows         uint16
	Cols         uint16
}

// Completed describes a command that has finished.
type Completed struct {
	InvocationID string
	SessionID    string
	Command      string
	Duration     time.Duration
	PTY          bool

	// ExitCode is valid when Signaled is false.
	ExitCode int

	// Signal is the terminating signal number when Signaled is true.
	Signaled bool
	Signal   int
}

// Notifier receives execution lifecycle notifications. Implementations must
// not block: notifications are fire-and-forget and never affect the outcome
// of the command they describe.
type Notifier interface {
	CommandStarted(Started)
	CommandCompleted(Completed)
}

// LogNotifier emits notifications as structured log records.
type LogNotifier struct {
	log *logging.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(log *logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// CommandStarted logs a command_start event with the PTY flag and the
// initial terminal size.
func (n *LogNotifier) CommandStarted(e Started) {
	n.log.Info("command_start",
		zap.String("cmd_id", e.InvocationID),
		zap.String("session_id", e.SessionID),
		zap.String("command", e.Command),
		zap.Bool("pty", e.PTY),
		zap.Uint16("pty_rows", e.Rows),
		zap.Uint16("pty_cols", e.Cols),
	)
}

// CommandCompleted logs a command_complete event with the duration and
// either the exit code or the terminating signal, never both.
func (n *LogNotifier) CommandCompleted(e Completed) {
	fields := []zap.Field{
		zap.String("cmd_id", e.InvocationID),
		zap.String("session_id", e.SessionID),
		zap.String("command", e.Command),
		zap.Bool("pty", e.PTY),
		zap.Int64("duration_ms", e.Duration.Milliseconds()),
	}
	if e.Signaled {
		fields = append(fields, zap.Int("term_signal", e.Signal))
	} else {
		fields = append(fields, zap.Int("exit_code", e.ExitCode))
	}
	n.log.Info("command_complete", fields...)
}

// NopNotifier discards all notifications. Used in tests.
type NopNotifier struct{}

func (NopNotifier) CommandStarted(Started)     {}
func (NopNotifier) CommandCompleted(Completed) {}
