package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSizeDefaults(t *testing.T) {
	t.Setenv("LINES", "")
	t.Setenv("COLUMNS", "")

	s := envSize()
	assert.Equal(t, uint16(defaultRows), s.Rows)
	assert.Equal(t, uint16(defaultCols), s.Cols)
	assert.True(t, s.Valid())
}

func TestEnvSizeFromEnvironment(t *testing.T) {
	t.Setenv("LINES", "30")
	t.Setenv("COLUMNS", "80")

	s := envSize()
	assert.Equal(t, uint16(30), s.Rows)
	assert.Equal(t, uint16(80), s.Cols)
}

func TestEnvSizeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		lines, columns string
	}{
		{"0", "0"},
		{"-5", "-10"},
		{"abc", "xyz"},
	}

	for _, tt := range tests {
		t.Setenv("LINES", tt.lines)
		t.Setenv("COLUMNS", tt.columns)

		s := envSize()
		assert.Equal(t, uint16(defaultRows), s.Rows, "LINES=%q", tt.lines)
		assert.Equal(t, uint16(defaultCols), s.Cols, "COLUMNS=%q", tt.columns)
	}
}

func TestQuerySizeAlwaysPositive(t *testing.T) {
	// With a real controlling terminal the ioctl answer wins; without one we
	// fall back to environment or defaults. Either way both dimensions must
	// be strictly positive.
	s := QuerySize()
	assert.True(t, s.Valid())
}

func TestSizeValid(t *testing.T) {
	assert.True(t, Size{Rows: 24, Cols: 80}.Valid())
	assert.False(t, Size{Rows: 0, Cols: 80}.Valid())
	assert.False(t, Size{Rows: 24, Cols: 0}.Valid())
	assert.False(t, Size{}.Valid())
}
