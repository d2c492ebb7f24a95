package term

import (
	"os"
	"strconv"
)

// Size is a terminal size in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Defaults used when no terminal and no environment hints are available.
const (
	defaultRows = 50
	defaultCols = 120
)

// Valid reports whether both dimensions are strictly positive.
func (s Size) Valid() bool {
	return s.Rows > 0 && s.Cols > 0
}

// envSize reads LINES/COLUMNS, falling back to the fixed defaults for any
// dimension that is missing or not a positive integer.
func envSize() Size {
	s := Size{Rows: defaultRows, Cols: defaultCols}
	if rows, err := strconv.Atoi(os.Getenv("LINES")); err == nil && rows > 0 {
		s.Rows = uint16(rows)
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		s.Cols = uint16(cols)
	}
	return s
}
