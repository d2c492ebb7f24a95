//go:build !windows

package pty

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeFromWaitNil(t *testing.T) {
	o, err := outcomeFromWait(nil)
	require.NoError(t, err)
	assert.Equal(t, Exited(0), o)
}

func TestOutcomeFromWaitExitCode(t *testing.T) {
	waitErr := exec.Command("/bin/sh", "-c", "exit 3").Run()
	require.Error(t, waitErr)

	o, err := outcomeFromWait(waitErr)
	require.NoError(t, err)
	assert.Equal(t, Exited(3), o)
}

func TestOutcomeFromWaitSignalDeath(t *testing.T) {
	waitErr := exec.Command("/bin/sh", "-c", "kill -TERM $$").Run()
	require.Error(t, waitErr)

	o, err := outcomeFromWait(waitErr)
	require.NoError(t, err)
	assert.Equal(t, Signaled(15), o)
}
