// Package term owns the host terminal: it saves and restores terminal
// attributes around a PTY session (raw mode tuned for short-timeout reads)
// and queries the host terminal size with sensible fallbacks.
package term
