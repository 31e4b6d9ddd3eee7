// Package cliutil provides small helpers shared by the yamltools CLI
// commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w, reporting a failed write on stderr instead of
// returning an error. Command output goes through here so that a broken
// pipe or full disk is at least visible.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
