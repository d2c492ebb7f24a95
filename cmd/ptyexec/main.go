// Command ptyexec runs a single command line the way an interactive shell
// would: it decides whether the command needs a pseudo-terminal, allocates
// and manages one when it does, and mirrors the child's exit status.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hostshell/ptyexec/internal/classify"
	"github.com/hostshell/ptyexec/internal/config"
	"github.com/hostshell/ptyexec/internal/events"
	"github.com/hostshell/ptyexec/internal/logging"
	"github.com/hostshell/ptyexec/internal/pty"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:           "ptyexec",
		Short:         "Run commands with automatic PTY allocation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to configuration file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newClassifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ptyexec:", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] -- command...",
		Short: "Execute a command line, on a PTY when it needs one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(strings.Join(args, " "))
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify -- command...",
		Short: "Print whether a command line would get a PTY",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw := strings.Join(args, " ")
			if classify.Decide(classify.StripForcePrefix(raw)) {
				fmt.Println("pty")
			} else {
				fmt.Println("no-pty")
			}
		},
	}
}

func runCommand(raw string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:       logLevel(cfg),
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner := pty.NewRunner(cfg, log, events.NewLogNotifier(log))
	invocationID := uuid.New().String()

	forced := classify.ForcePTY(raw)
	command := classify.StripForcePrefix(raw)

	usePTY := false
	switch {
	case classify.Disabled() || cfg.PTY.Disable:
	case forced || cfg.PTY.Force:
		usePTY = true
	default:
		usePTY = classify.Decide(command)
	}

	var outcome pty.ExitOutcome
	if usePTY {
		outcome, err = runner.Run(command, invocationID)
	} else {
		outcome, err = runner.RunPiped(command, invocationID)
	}
	if err != nil {
		if errors.Is(err, pty.ErrPTYUnsupported) {
			return fmt.Errorf("cannot allocate a terminal for this command: %w", err)
		}
		return err
	}

	_ = log.Sync()
	os.Exit(outcome.ShellCode())
	return nil
}

// logLevel maps the config onto a zap level, with the PTY debug toggle
// promoting everything to debug.
func logLevel(cfg *config.Config) string {
	if cfg.PTY.Debug {
		return "debug"
	}
	if cfg.Logging.Level != "" {
		return cfg.Logging.Level
	}
	return "info"
}
