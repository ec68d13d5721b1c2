// Package ui renders human-facing command output.
package ui

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether styled output should be written to f.
//
// Returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - CI is set (log viewers often mangle escape codes)
//   - f is not a terminal
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
