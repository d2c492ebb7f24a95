// Package config loads the shell configuration consumed by the PTY
// execution subsystem: shell and working directory, session identity for
// tracing, and the PTY behavior toggles (disable, force, debug,
// pipeline-tail classification).
package config
