// Package keypath addresses values inside a document tree by dotted key
// path: "database.host" names the value reached by walking mapping keys
// segment by segment. Sequences are opaque to this scheme; their elements
// cannot be addressed.
package keypath

import (
	"strings"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/yamlerrors"
)

// Split validates a dotted key path and returns its segments. An empty
// path, or a path containing an empty segment ("a..b", "a."), is rejected
// with yamlerrors.ErrEmptyPath.
func Split(path string) ([]string, error) {
	if path == "" {
		return nil, yamlerrors.ErrEmptyPath
	}
	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, yamlerrors.ErrEmptyPath
		}
	}
	return parts, nil
}

// Get resolves path inside root. The boolean reports whether the full path
// resolved; a missing key or a non-mapping along the way is absence, not an
// error. The only error is an invalid path.
func Get(root *document.Node, path string) (*document.Node, bool, error) {
	parts, err := Split(path)
	if err != nil {
		return nil, false, err
	}
	current := root
	for _, part := range parts {
		next, ok := current.Get(part)
		if !ok {
			return nil, false, nil
		}
		current = next
	}
	return current, true, nil
}

// Set stores value at path, creating intermediate mappings as needed.
// When root is not a mapping it is rewritten in place into an empty one,
// losing the previous root content. Intermediate segments holding
// non-mapping values are likewise replaced by empty mappings. The final
// segment is inserted or overwritten, clobbering whatever was there.
// root must not be nil.
func Set(root *document.Node, path string, value *document.Node) error {
	parts, err := Split(path)
	if err != nil {
		return err
	}
	if root.Kind != document.KindMapping {
		*root = document.Node{Kind: document.KindMapping}
	}
	current := root
	for _, part := range parts[:len(parts)-1] {
		next, ok := current.Get(part)
		if !ok || next.Kind != document.KindMapping {
			next = document.NewMapping()
			current.Set(part, next)
		}
		current = next
	}
	current.Set(parts[len(parts)-1], value)
	return nil
}

// Unset removes the value at path. Removing a path that does not exist is
// a successful no-op: the walk never creates structure, and a missing or
// non-mapping intermediate simply ends the operation.
func Unset(root *document.Node, path string) error {
	parts, err := Split(path)
	if err != nil {
		return err
	}
	current := root
	for _, part := range parts[:len(parts)-1] {
		next, ok := current.Get(part)
		if !ok || next.Kind != document.KindMapping {
			return nil
		}
		current = next
	}
	current.Delete(parts[len(parts)-1])
	return nil
}
