package cliutil

import (
	"os"
	"testing"

	"golang.org/x/term"
)

func TestTerminalWidth_ColumnsEnv(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal; COLUMNS fallback not reachable")
	}
	t.Setenv("COLUMNS", "120")
	if got := TerminalWidth(); got != 120 {
		t.Errorf("TerminalWidth() = %d, want 120", got)
	}
}

func TestTerminalWidth_InvalidColumns(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal; COLUMNS fallback not reachable")
	}
	for _, cols := range []string{"abc", "0", "-5"} {
		t.Setenv("COLUMNS", cols)
		if got := TerminalWidth(); got != DefaultTerminalWidth {
			t.Errorf("TerminalWidth() with COLUMNS=%q = %d, want %d", cols, got, DefaultTerminalWidth)
		}
	}
}

func TestTerminalWidth_Default(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal; COLUMNS fallback not reachable")
	}
	t.Setenv("COLUMNS", "")
	if got := TerminalWidth(); got != DefaultTerminalWidth {
		t.Errorf("TerminalWidth() = %d, want %d", got, DefaultTerminalWidth)
	}
}
