//go:build !windows

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAcquireAndRestore(t *testing.T) {
	// Without a real terminal on stdin the guard is a no-op, but the
	// acquire/restore lifecycle must still hold.
	g, err := AcquireGuard()
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.NoError(t, g.Restore())
}

func TestGuardDoesNotNest(t *testing.T) {
	g, err := AcquireGuard()
	require.NoError(t, err)

	_, err = AcquireGuard()
	assert.ErrorIs(t, err, ErrGuardActive)

	require.NoError(t, g.Restore())

	g2, err := AcquireGuard()
	require.NoError(t, err)
	require.NoError(t, g2.Restore())
}

func TestGuardRestoreIdempotent(t *testing.T) {
	g, err := AcquireGuard()
	require.NoError(t, err)

	assert.NoError(t, g.Restore())
	assert.NoError(t, g.Restore())
	assert.NoError(t, g.Restore())
}
