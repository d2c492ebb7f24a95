//go:build !windows

package config

import (
	"errors"
	"os"
	"os/exec"
)

// shellCandidates is the fallback order when $SHELL is unset or not runnable.
var shellCandidates = []string{"/bin/bash", "/bin/zsh", "/bin/sh"}

// DetectShell picks the interpreter used for "shell -c command" invocations:
// the user's $SHELL when it points at something runnable, otherwise the
// first runnable fallback.
func DetectShell() (string, error) {
	if shell := os.Getenv("SHELL"); shell != "" && runnable(shell) {
		return shell, nil
	}

	for _, candidate := range shellCandidates {
		if runnable(candidate) {
			return candidate, nil
		}
	}

	return "", errors.New("no usable shell: $SHELL is unset or broken and no fallback is present")
}

// runnable reports whether path is a regular file with an execute bit that
// the loader would accept.
func runnable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
		return false
	}
	_, err = exec.LookPath(path)
	return err == nil
}
