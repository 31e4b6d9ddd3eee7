// Package patcher rewrites YAML text to match an edited document tree
// while preserving the original formatting wherever the edit allows it.
//
// The patcher never generates YAML structure from scratch. It diffs the
// tree parsed from the original text against the edited tree and applies
// the change set as line-level surgery: changed keys get their line
// rewritten in place, removed keys get their block dropped, and new
// top-level keys are appended. Comments, blank lines, and indentation
// outside the touched blocks pass through untouched. Any edit the line
// scan cannot express safely, such as new nested structure or a key the
// index cannot locate in the text, downgrades to a full re-serialization
// instead of failing.
package patcher

import (
	"strings"

	"github.com/erraggy/yamltools/differ"
	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/keypath"
)

// Patch returns the original text rewritten so that it parses to the
// edited tree. The original text must itself be valid YAML; the edited
// tree is not modified. Callers should only write the result back to
// storage when the returned error is nil.
func Patch(original string, edited *document.Node) (string, error) {
	originalTree, err := document.Parse([]byte(original))
	if err != nil {
		return "", err
	}

	diff := differ.Diff(originalTree, edited)
	if !diff.LinePatchable {
		out, err := document.Serialize(edited)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if diff.Empty() {
		return original, nil
	}
	return applyLines(original, originalTree, diff)
}

// applyLines walks the original text line by line, rewriting, dropping,
// and appending according to the change set. It bails out to applyTree
// the moment it meets an edit that line surgery cannot express.
func applyLines(original string, originalTree *document.Node, diff *differ.Result) (string, error) {
	lines := strings.Split(original, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		// The final newline is restored by the mirror rule below, not
		// carried through the scan as a phantom blank line.
		lines = lines[:len(lines)-1]
	}
	index := buildLineIndex(lines)

	out := make([]string, 0, len(lines)+4)
	matchedUpdates := make(map[string]bool)
	matchedRemovals := make(map[string]bool)

	inSkip := false
	skipIndent := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		blank := trimmed == "" || strings.HasPrefix(trimmed, "#")
		indent := leadingSpaces(line)

		if inSkip {
			// Blank and comment lines inside a dropped or superseded
			// block are kept only when they sit at or above the block's
			// own indentation.
			if blank {
				if indent <= skipIndent {
					out = append(out, line)
				}
				continue
			}
			if indent > skipIndent {
				continue
			}
			inSkip = false
		}
		if blank {
			out = append(out, line)
			continue
		}

		entry, ok := index[i]
		if !ok {
			out = append(out, line)
			continue
		}
		if diff.UnderRemoved(entry.path) {
			if diff.IsRemoved(entry.path) {
				matchedRemovals[entry.path] = true
			}
			inSkip = true
			skipIndent = indent
			continue
		}
		if value, ok := diff.Update(entry.path); ok {
			formatted := formatValue(value)
			if strings.Contains(formatted, "\n") {
				return applyTree(originalTree, diff)
			}
			out = append(out, keyValueLine(entry.indent, entry.key, formatted))
			matchedUpdates[entry.path] = true
			inSkip = true
			skipIndent = indent
			continue
		}
		out = append(out, line)
	}

	for _, change := range diff.Changes {
		switch change.Type {
		case differ.ChangeTypeRemoved:
			// A removal whose key line never appeared in the text, for
			// example a key written in flow style, cannot be dropped
			// line by line.
			if !matchedRemovals[change.Path] {
				return applyTree(originalTree, diff)
			}
		default:
			if matchedUpdates[change.Path] {
				continue
			}
			// Only brand-new top-level keys can be appended. Nested
			// additions and edits to keys the index could not see in the
			// text both need the whole document rebuilt.
			if change.Type == differ.ChangeTypeModified || strings.Contains(change.Path, ".") {
				return applyTree(originalTree, diff)
			}
			formatted := formatValue(change.NewValue)
			if strings.Contains(formatted, "\n") {
				return applyTree(originalTree, diff)
			}
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			out = append(out, keyValueLine(0, change.Path, formatted))
		}
	}

	result := strings.Join(out, "\n")
	if strings.HasSuffix(original, "\n") && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result, nil
}

// applyTree rebuilds the document by applying the whole change set onto
// the tree parsed from the original text, then serializing the result.
// Formatting and comments are lost, which is the price of edits the line
// scan cannot express.
func applyTree(originalTree *document.Node, diff *differ.Result) (string, error) {
	for _, change := range diff.Changes {
		if change.Type == differ.ChangeTypeRemoved {
			if err := keypath.Unset(originalTree, change.Path); err != nil {
				return "", err
			}
			continue
		}
		if err := keypath.Set(originalTree, change.Path, change.NewValue); err != nil {
			return "", err
		}
	}
	out, err := document.Serialize(originalTree)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func keyValueLine(indent int, key, formatted string) string {
	prefix := strings.Repeat(" ", indent)
	if formatted == "" {
		return prefix + key + ":"
	}
	return prefix + key + ": " + formatted
}
