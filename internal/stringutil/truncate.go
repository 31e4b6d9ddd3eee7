package stringutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate shortens s to fit within width terminal columns, appending "..."
// when anything was cut. Widths are measured per grapheme cluster so that
// multi-byte and double-width characters are never split.
func Truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	budget := width - 3
	if budget < 0 {
		budget = 0
	}
	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString("...")
	return b.String()
}
