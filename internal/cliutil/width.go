package cliutil

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultTerminalWidth is the width assumed when stdout is not a terminal
// and the COLUMNS environment variable is unset or unusable.
const DefaultTerminalWidth = 80

// TerminalWidth returns the column width of the terminal attached to stdout.
// When stdout is not a terminal it falls back to the COLUMNS environment
// variable, and failing that to DefaultTerminalWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultTerminalWidth
}
