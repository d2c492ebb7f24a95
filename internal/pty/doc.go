// Package pty runs commands on a pseudo-terminal: it opens the PTY pair,
// spawns the child on the subordinate side, forwards bytes between the host
// terminal and the controlling side, keeps the child's window size and
// signal delivery in sync with the host, and restores the host terminal on
// teardown. It also provides the plain piped execution path used when no
// PTY is wanted.
package pty
