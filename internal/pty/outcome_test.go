package pty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeExited(t *testing.T) {
	o := Exited(3)

	code, ok := o.Exited()
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	_, signaled := o.Signal()
	assert.False(t, signaled)

	assert.False(t, o.Success())
	assert.True(t, Exited(0).Success())
	assert.Equal(t, "exited(3)", o.String())
}

func TestOutcomeSignaled(t *testing.T) {
	o := Signaled(15)

	sig, ok := o.Signal()
	assert.True(t, ok)
	assert.Equal(t, 15, sig)

	_, exited := o.Exited()
	assert.False(t, exited)

	assert.False(t, o.Success())
	assert.Equal(t, "signaled(15)", o.String())
}

func TestShellCode(t *testing.T) {
	assert.Equal(t, 0, Exited(0).ShellCode())
	assert.Equal(t, 42, Exited(42).ShellCode())
	assert.Equal(t, 130, Signaled(2).ShellCode())
	assert.Equal(t, 137, Signaled(9).ShellCode())
}
