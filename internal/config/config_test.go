package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the given variables for the test, restoring them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func clearAllConfigEnv(t *testing.T) {
	t.Helper()
	clearEnv(t,
		"PTYEXEC_SHELL", "PTYEXEC_WORKING_DIR", "PTYEXEC_SESSION_ID", "PTYEXEC_TRACE_LOG",
		"PTYEXEC_DISABLE_PTY", "PTYEXEC_FORCE_PTY", "PTYEXEC_PTY_DEBUG", "PTYEXEC_PIPELINE_LAST",
		"PTYEXEC_LOG_LEVEL", "PTYEXEC_LOG_DEV",
	)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	clearAllConfigEnv(t)

	cfg := Default()
	assert.NotEmpty(t, cfg.Shell)
	assert.NotEmpty(t, cfg.SessionID)
	_, err := uuid.Parse(cfg.SessionID)
	assert.NoError(t, err, "generated session ids are UUIDs")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.PTY.Disable)
	assert.False(t, cfg.PTY.Force)
	assert.False(t, cfg.PTY.Debug)
	assert.False(t, cfg.PTY.PipelineTail)
}

func TestLoadFileValues(t *testing.T) {
	clearAllConfigEnv(t)

	path := writeConfigFile(t, `
shell: /bin/bash
working_dir: /tmp
session_id: file-session
trace_log: /tmp/trace.log
pty:
  disable: true
  pipeline_tail: true
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, "/tmp", cfg.WorkingDir)
	assert.Equal(t, "file-session", cfg.SessionID)
	assert.Equal(t, "/tmp/trace.log", cfg.TraceLogFile)
	assert.True(t, cfg.PTY.Disable)
	assert.True(t, cfg.PTY.PipelineTail)
	assert.False(t, cfg.PTY.Force)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	clearAllConfigEnv(t)
	t.Setenv("PTYEXEC_SHELL", "/bin/zsh")
	t.Setenv("PTYEXEC_SESSION_ID", "env-session")
	t.Setenv("PTYEXEC_LOG_LEVEL", "warn")

	path := writeConfigFile(t, `
shell: /bin/bash
session_id: file-session
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/zsh", cfg.Shell)
	assert.Equal(t, "env-session", cfg.SessionID)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFilePreservedWhenEnvUnset(t *testing.T) {
	clearAllConfigEnv(t)

	path := writeConfigFile(t, "logging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level,
		"an unset variable must not clobber a file-supplied level")
}

func TestLoadEnvToggles(t *testing.T) {
	clearAllConfigEnv(t)
	t.Setenv("PTYEXEC_DISABLE_PTY", "true")
	t.Setenv("PTYEXEC_FORCE_PTY", "1")
	t.Setenv("PTYEXEC_PTY_DEBUG", "true")
	t.Setenv("PTYEXEC_PIPELINE_LAST", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.PTY.Disable)
	assert.True(t, cfg.PTY.Force)
	assert.True(t, cfg.PTY.Debug)
	assert.True(t, cfg.PTY.PipelineTail)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearAllConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Shell)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	clearAllConfigEnv(t)

	path := writeConfigFile(t, "shell: [unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)

	cfg := LoadOrDefault(path)
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSessionIDGeneratedOncePerLoad(t *testing.T) {
	clearAllConfigEnv(t)

	a, err := Load("")
	require.NoError(t, err)
	b, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, a.SessionID)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}
