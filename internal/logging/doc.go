// Package logging provides the structured zap logger used across the
// PTY execution subsystem.
package logging
