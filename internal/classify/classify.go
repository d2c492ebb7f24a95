package classify

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
)

// Environment variables recognized by this package.
const (
	// EnvTestMode skips the live-terminal probe so classification can be
	// exercised in automated test runs without a real TTY.
	EnvTestMode = "PTYEXEC_TEST_MODE"

	// EnvPipelineTail enables classification of the final unredirected
	// segment of a pipeline instead of rejecting piped commands outright.
	EnvPipelineTail = "PTYEXEC_PIPELINE_LAST"

	// EnvForcePTY forces PTY allocation for every invocation.
	EnvForcePTY = "PTYEXEC_FORCE_PTY"

	// EnvDisablePTY disables PTY allocation entirely.
	EnvDisablePTY = "PTYEXEC_DISABLE_PTY"
)

// forcePrefix marks a single command line for forced PTY execution.
const forcePrefix = ":pty "

// knownTUIs is the conservative allowlist of full-screen programs that
// always need a terminal. python, node, git, ssh and the container CLIs are
// handled by dedicated rules instead.
var knownTUIs = map[string]bool{
	"vim": true, "vi": true, "nvim": true, "neovim": true, "nano": true, "emacs": true,
	"less": true, "more": true, "most": true,
	"top": true, "htop": true, "btop": true, "glances": true,
	"telnet": true, "ftp": true, "sftp": true,
	"claude": true, "codex": true, "gemini": true,
	"tmux": true, "screen": true, "zellij": true,
	"fzf": true, "lazygit": true, "gitui": true, "tig": true,
	"ranger": true, "yazi": true, "k9s": true, "nmtui": true,
	"ipython": true, "bpython": true,
	"sqlite3": true, "psql": true, "mysql": true,
}

// Decide reports whether the command line needs PTY allocation. It reads the
// live environment for the test-mode and pipeline-tail toggles; everything
// else is a deterministic function of the command text.
func Decide(raw string) bool {
	d := decider{
		testMode:     os.Getenv(EnvTestMode) != "",
		pipelineTail: os.Getenv(EnvPipelineTail) != "",
	}
	return d.decide(raw)
}

// ForcePTY reports whether the invocation carries a user override that
// forces PTY allocation, either the ":pty " prefix or the environment toggle.
func ForcePTY(raw string) bool {
	return strings.HasPrefix(raw, forcePrefix) || os.Getenv(EnvForcePTY) != ""
}

// StripForcePrefix removes the ":pty " override marker, if present, and
// returns the command that should actually run.
func StripForcePrefix(raw string) string {
	return strings.TrimPrefix(raw, forcePrefix)
}

// Disabled reports whether PTY allocation is globally disabled.
func Disabled() bool {
	return os.Getenv(EnvDisablePTY) != ""
}

// decider carries the toggles so the rules stay testable without mutating
// process environment.
type decider struct {
	testMode     bool
	pipelineTail bool
}

func (d decider) decide(cmd string) bool {
	// Never allocate a PTY when our own stdio is not a terminal.
	if !d.testMode {
		if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
			return false
		}
	}

	// Piped, redirected, and sequenced commands never get a PTY, except in
	// pipeline-tail mode where the last unredirected segment is re-examined.
	if hasTopLevelShellMeta(cmd) {
		if d.pipelineTail && strings.Contains(cmd, "|") {
			if idx := strings.LastIndex(cmd, "|"); idx >= 0 {
				last := cmd[idx+1:]
				hasRedirect := strings.ContainsAny(last, "<>") || strings.Contains(last, "&>")
				if !hasRedirect {
					return d.decide(strings.TrimSpace(last))
				}
			}
		}
		return false
	}

	tokens, err := splitTokens(cmd)
	if err != nil || len(tokens) == 0 {
		// Malformed command line, don't guess.
		return false
	}

	working := peelWrappers(tokens)
	if len(working) == 0 {
		working = tokens
	}

	first := filepath.Base(working[0])
	cmdLower := strings.ToLower(first)
	if runtime.GOOS == "windows" {
		cmdLower = strings.TrimSuffix(cmdLower, ".exe")
		cmdLower = strings.TrimSuffix(cmdLower, ".cmd")
		cmdLower = strings.TrimSuffix(cmdLower, ".bat")
	}

	if sudoWantsPTY(cmdLower, working) {
		return true
	}
	if isInteractiveShell(cmdLower, working) {
		return true
	}
	if looksLikeREPL(cmdLower, working) {
		return true
	}
	if wantsDebuggerPTY(cmdLower, working) {
		return true
	}
	if containerWantsPTY(cmdLower, working) {
		return true
	}
	if cmdLower == "git" && gitWantsPTY(working) {
		return true
	}
	if cmdLower == "ssh" {
		return sshWantsPTY(working)
	}

	return knownTUIs[cmdLower]
}

// hasTopLevelShellMeta reports whether the line contains a pipe, redirect,
// background, or sequencing operator outside quotes, backticks, and $(...)
// subshells.
func hasTopLevelShellMeta(s string) bool {
	var inSingle, inDouble, inBackticks, escape bool
	subshellDepth := 0

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if escape {
			escape = false
			continue
		}

		if ch == '$' && !inSingle && !inBackticks && i+1 < len(runes) && runes[i+1] == '(' {
			i++
			subshellDepth++
			continue
		}

		switch {
		case ch == '\\' && !inSingle:
			escape = true
		case ch == '`' && !inSingle && !inDouble && subshellDepth == 0:
			inBackticks = !inBackticks
		case ch == '\'' && !inDouble && !inBackticks && subshellDepth == 0:
			inSingle = !inSingle
		case ch == '"' && !inSingle && !inBackticks && subshellDepth == 0:
			inDouble = !inDouble
		case ch == '(' && !inSingle && !inDouble && !inBackticks && subshellDepth > 0:
			subshellDepth++
		case ch == ')' && !inSingle && !inDouble && !inBackticks && subshellDepth > 0:
			subshellDepth--
		case (ch == '|' || ch == '>' || ch == '<' || ch == '&' || ch == ';') &&
			!inSingle && !inDouble && !inBackticks && subshellDepth == 0:
			return true
		}
	}
	return false
}

// splitTokens performs quote- and escape-aware word splitting. Unbalanced
// quotes and trailing escapes come back as an error so the caller can fall
// back to the safe default.
func splitTokens(s string) ([]string, error) {
	return shellwords.Parse(s)
}
