// Package search implements regex search over the dotted key paths of a
// document tree.
package search

import (
	"regexp"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/yamlerrors"
)

// Match is one search hit: the full dotted path of a mapping entry and the
// value stored there, which may be a whole subtree.
type Match struct {
	Path  string
	Value *document.Node
}

// Search walks the mapping entries of root depth-first, pre-order, in
// insertion order, testing each full dotted path against pattern with
// unanchored substring semantics. A matching entry is emitted with its
// whole value subtree and the walk does not descend into it, so a match on
// a parent suppresses matches on its descendants. Non-matching mapping
// values are descended with the extended path; sequence values are opaque
// and never descended. An invalid pattern fails the whole search before
// any result is produced.
func Search(root *document.Node, pattern string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &yamlerrors.PatternError{Pattern: pattern, Cause: err}
	}
	var matches []Match
	collect(root, "", re, &matches)
	return matches, nil
}

func collect(node *document.Node, prefix string, re *regexp.Regexp, matches *[]Match) {
	if node == nil || node.Kind != document.KindMapping {
		return
	}
	for _, p := range node.Pairs {
		path := p.Key
		if prefix != "" {
			path = prefix + "." + p.Key
		}
		if re.MatchString(path) {
			*matches = append(*matches, Match{Path: path, Value: p.Value})
			continue
		}
		if p.Value != nil && p.Value.Kind == document.KindMapping {
			collect(p.Value, path, re, matches)
		}
	}
}
