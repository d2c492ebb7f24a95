//go:build windows

package pty

// startResizeListener is a no-op: there is no SIGWINCH on Windows and the
// pipe fallback has no window to resize. Sessions get the console size once
// at start through COLUMNS and LINES.
func (r *Runner) startResizeListener() {}
