// Package differ compares two document trees and reports the key paths
// that were added, removed, or modified between them.
//
// The comparison walks mappings key by key: nested edits are reported at
// the deepest changed path rather than at their ancestors, so a change to
// server.port does not flag all of server as modified. Sequences are
// treated as atomic values. Alongside the change list, the differ renders
// a verdict on whether the whole edit can be expressed as line-level
// surgery on the original text, or whether new nested structure forces a
// full re-serialization.
package differ

import (
	"strings"

	"github.com/erraggy/yamltools/document"
)

// ChangeType indicates whether a change is an addition, removal, or modification
type ChangeType string

const (
	// ChangeTypeAdded indicates a new key was added
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates a key was removed
	ChangeTypeRemoved ChangeType = "removed"
	// ChangeTypeModified indicates an existing key's value changed
	ChangeTypeModified ChangeType = "modified"
)

// Change represents a single difference between two document trees.
type Change struct {
	// Path is the dotted key path where the change occurred. It is empty
	// only when the root of the document itself changed shape.
	Path string
	// Type indicates whether the path was added, removed, or modified
	Type ChangeType
	// OldValue is the subtree at Path in the original tree (nil for additions)
	OldValue *document.Node
	// NewValue is the subtree at Path in the edited tree (nil for removals)
	NewValue *document.Node
}

// Result holds the outcome of comparing an original tree against an
// edited one.
type Result struct {
	// Changes lists every detected difference. Additions and
	// modifications appear first in document order of the edited tree,
	// followed by removals in document order of the original tree.
	Changes []Change

	// LinePatchable reports whether the edit can be applied as line-level
	// replacements, insertions, and deletions on the original text. It is
	// false when the edit introduces or reshapes nested mapping
	// structure, which cannot be synthesized by single-line edits.
	LinePatchable bool

	updates  map[string]*document.Node
	removals map[string]bool
}

// Diff compares original against edited and returns the full change set.
// Neither tree is modified. Mapping values are walked recursively so that
// only the deepest differing paths are reported; a removed key is reported
// once at the removed path, never per descendant.
func Diff(original, edited *document.Node) *Result {
	r := &Result{
		LinePatchable: true,
		updates:       make(map[string]*document.Node),
		removals:      make(map[string]bool),
	}
	r.compare(original, edited, "")
	r.scanRemovals(original, edited, "")
	return r
}

// Empty reports whether the two trees were identical.
func (r *Result) Empty() bool {
	return len(r.Changes) == 0
}

// Update returns the new value recorded for path, if the path was added
// or modified.
func (r *Result) Update(path string) (*document.Node, bool) {
	v, ok := r.updates[path]
	return v, ok
}

// IsRemoved reports whether path itself was removed.
func (r *Result) IsRemoved(path string) bool {
	return r.removals[path]
}

// UnderRemoved reports whether path is a removed path or a descendant of
// one, meaning any text belonging to it should be dropped when patching.
func (r *Result) UnderRemoved(path string) bool {
	if r.removals[path] {
		return true
	}
	for removed := range r.removals {
		if strings.HasPrefix(path, removed+".") {
			return true
		}
	}
	return false
}

// compare walks the edited tree against the original, recording additions
// and modifications. Removals are collected separately by scanRemovals so
// that a single pass over each tree suffices.
func (r *Result) compare(original, edited *document.Node, prefix string) {
	if isMapping(original) && isMapping(edited) {
		for _, pair := range edited.Pairs {
			path := joinPath(prefix, pair.Key)
			oldValue, ok := original.Get(pair.Key)
			if !ok {
				// Brand-new key: record the whole subtree. New nested
				// mappings cannot be written as single-line insertions.
				if pair.Value.Kind == document.KindMapping {
					r.LinePatchable = false
				}
				r.record(Change{Path: path, Type: ChangeTypeAdded, NewValue: pair.Value})
				continue
			}
			if oldValue.Equals(pair.Value) {
				continue
			}
			if isMapping(oldValue) != isMapping(pair.Value) {
				// The value changed shape across the mapping boundary.
				r.LinePatchable = false
			}
			if pair.Value.Kind == document.KindMapping || pair.Value.Kind == document.KindSequence {
				r.compare(oldValue, pair.Value, path)
				continue
			}
			r.record(Change{Path: path, Type: ChangeTypeModified, OldValue: oldValue, NewValue: pair.Value})
		}
		return
	}
	if original.Equals(edited) {
		return
	}
	// Non-mapping pair at this path: the value is replaced wholesale. At
	// the document root this means the whole document changed shape, which
	// no line patch can express.
	if prefix == "" {
		r.LinePatchable = false
	}
	r.record(Change{Path: prefix, Type: ChangeTypeModified, OldValue: original, NewValue: edited})
}

// scanRemovals records keys present in the original tree but absent from
// the edited one. Recursion stops at a removed key, so removing a parent
// yields exactly one change entry.
func (r *Result) scanRemovals(original, edited *document.Node, prefix string) {
	if !isMapping(original) || !isMapping(edited) {
		return
	}
	for _, pair := range original.Pairs {
		path := joinPath(prefix, pair.Key)
		newValue, ok := edited.Get(pair.Key)
		if !ok {
			r.record(Change{Path: path, Type: ChangeTypeRemoved, OldValue: pair.Value})
			continue
		}
		if isMapping(pair.Value) && isMapping(newValue) {
			r.scanRemovals(pair.Value, newValue, path)
		}
	}
}

func (r *Result) record(c Change) {
	r.Changes = append(r.Changes, c)
	switch c.Type {
	case ChangeTypeRemoved:
		r.removals[c.Path] = true
	default:
		r.updates[c.Path] = c.NewValue
	}
}

func isMapping(n *document.Node) bool {
	return n != nil && n.Kind == document.KindMapping
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
