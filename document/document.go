// Package document defines the in-memory tree model for parsed YAML
// documents: ordered mappings, sequences, and typed scalars.
//
// The model deliberately carries less than full YAML (no anchors, no flow
// style, no multi-document streams survive a round trip). Mapping key order
// is preserved on parse and serialize but ignored by equality, which is what
// the diff and patch layers need: two documents that differ only in key
// order are the same document.
package document

import (
	"fmt"
	"math"
)

// Kind identifies which variant a Node holds.
type Kind int

const (
	// KindNull is the null value. It is the zero Kind, so a zero Node is null.
	KindNull Kind = iota
	// KindScalar is a string, integer, float, or boolean leaf.
	KindScalar
	// KindMapping is an ordered set of key/value pairs with unique string keys.
	KindMapping
	// KindSequence is an ordered list of values.
	KindSequence
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Pair is a single key/value entry of a mapping.
type Pair struct {
	Key   string
	Value *Node
}

// Node is one node of a document tree. Exactly one payload field is
// meaningful, selected by Kind: Value for scalars, Pairs for mappings,
// Items for sequences. Null nodes carry no payload.
type Node struct {
	Kind Kind

	// Value holds the scalar payload for KindScalar nodes:
	// a string, int64, float64, or bool.
	Value any

	// Pairs holds the entries of a KindMapping node in insertion order.
	// Keys are unique; Set and Delete maintain that.
	Pairs []Pair

	// Items holds the elements of a KindSequence node.
	Items []*Node
}

// NewString returns a string scalar node.
func NewString(v string) *Node { return &Node{Kind: KindScalar, Value: v} }

// NewInt returns an integer scalar node.
func NewInt(v int64) *Node { return &Node{Kind: KindScalar, Value: v} }

// NewFloat returns a float scalar node.
func NewFloat(v float64) *Node { return &Node{Kind: KindScalar, Value: v} }

// NewBool returns a boolean scalar node.
func NewBool(v bool) *Node { return &Node{Kind: KindScalar, Value: v} }

// NewNull returns a null node.
func NewNull() *Node { return &Node{Kind: KindNull} }

// NewMapping returns an empty mapping node.
func NewMapping() *Node { return &Node{Kind: KindMapping} }

// NewSequence returns a sequence node holding items.
func NewSequence(items ...*Node) *Node { return &Node{Kind: KindSequence, Items: items} }

// Get returns the value stored under key. It reports false when n is not a
// mapping or the key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, overwriting in place when the key exists and
// appending otherwise, so unrelated key order is never disturbed. It is a
// no-op when n is not a mapping.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.Kind != KindMapping {
		return
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key == key {
			n.Pairs[i].Value = value
			return
		}
	}
	n.Pairs = append(n.Pairs, Pair{Key: key, Value: value})
}

// Delete removes key from the mapping, preserving the order of the
// remaining entries. It reports whether the key was present.
func (n *Node) Delete(key string) bool {
	if n == nil || n.Kind != KindMapping {
		return false
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key == key {
			n.Pairs = append(n.Pairs[:i], n.Pairs[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of n. Mutating the copy never affects the
// original. Clone of nil is nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Value: n.Value}
	if n.Pairs != nil {
		out.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			out.Pairs[i] = Pair{Key: p.Key, Value: p.Value.Clone()}
		}
	}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Equals reports deep structural equality. Mappings are equal when they
// hold the same keys with equal values, regardless of key order. Sequences
// are order-sensitive. Scalars compare by type and value.
func (n *Node) Equals(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindNull:
		return true
	case KindScalar:
		return scalarEqual(n.Value, other.Value)
	case KindSequence:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equals(other.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(n.Pairs) != len(other.Pairs) {
			return false
		}
		for _, p := range n.Pairs {
			ov, ok := other.Get(p.Key)
			if !ok || !p.Value.Equals(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// scalarEqual compares scalar payloads. NaN equals NaN here so a reparsed
// document always equals itself.
func scalarEqual(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok && math.IsNaN(af) && math.IsNaN(bf) {
		return true
	}
	return a == b
}

// Interface converts the tree to plain Go values: map[string]any for
// mappings (key order is lost), []any for sequences, the scalar payload
// for scalars, and nil for null. Intended for structured JSON/YAML output,
// not for editing.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindScalar:
		return n.Value
	case KindMapping:
		m := make(map[string]any, len(n.Pairs))
		for _, p := range n.Pairs {
			m[p.Key] = p.Value.Interface()
		}
		return m
	case KindSequence:
		s := make([]any, len(n.Items))
		for i, item := range n.Items {
			s[i] = item.Interface()
		}
		return s
	default:
		return nil
	}
}
