//go:build !windows

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShellPrefersEnvShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	shell, err := DetectShell()
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", shell)
}

func TestDetectShellSkipsBrokenEnvShell(t *testing.T) {
	t.Setenv("SHELL", "/nonexistent/shell")

	shell, err := DetectShell()
	require.NoError(t, err)
	assert.Contains(t, shellCandidates, shell)
}

func TestRunnable(t *testing.T) {
	assert.True(t, runnable("/bin/sh"))
	assert.False(t, runnable("/nonexistent/shell"))
	assert.False(t, runnable("/"), "directories are not runnable")
}
