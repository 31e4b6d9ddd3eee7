package patcher

import "strings"

// lineKey records what the index knows about a content line: the dotted
// path the line's key represents, the key text as written, and the
// indentation width in spaces.
type lineKey struct {
	path   string
	key    string
	indent int
}

type frame struct {
	indent int
	key    string
}

// buildLineIndex maps line numbers to the key paths they introduce. The
// scan tracks an indentation stack: a line at some indent pops every
// frame at that indent or deeper before pushing its own key, so the
// stack always spells out the dotted path of the current line.
//
// Blank lines, comments, and lines without a "key:" shape are left out
// and do not disturb the stack. Quoted keys contribute a path segment
// for the lines nested beneath them but are not indexed themselves; the
// quotes are not part of the key in the parsed tree, so the textual path
// can never match a tree path.
func buildLineIndex(lines []string) map[int]lineKey {
	index := make(map[int]lineKey)
	var stack []frame
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		colon := strings.Index(trimmed, ":")
		if colon <= 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:colon])
		if key == "" {
			continue
		}

		indent := leadingSpaces(line)
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, frame{indent: indent, key: key})

		if strings.HasPrefix(key, `"`) || strings.HasPrefix(key, "'") {
			continue
		}
		parts := make([]string, len(stack))
		for j, f := range stack {
			parts[j] = f.key
		}
		index[i] = lineKey{path: strings.Join(parts, "."), key: key, indent: indent}
	}
	return index
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
