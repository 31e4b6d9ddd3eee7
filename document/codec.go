package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/yamltools/yamlerrors"
)

// Parse decodes YAML text into a document tree. Empty input parses to a
// null node. Mapping keys must be scalars; their text becomes the key, and
// a duplicated key keeps the first key's position with the last value.
// Aliases are expanded in place.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &yamlerrors.ParseError{Cause: err}
	}
	return fromYAML(&root)
}

func fromYAML(node *yaml.Node) (*Node, error) {
	return fromYAMLNode(node, nil)
}

// fromYAMLNode does the conversion. expanding holds the alias targets on
// the current path: the yaml decoder only checks for self-containing
// anchors when decoding into Go values, so a node tree can still carry a
// cycle, and following one here would never terminate.
func fromYAMLNode(node *yaml.Node, expanding map[*yaml.Node]bool) (*Node, error) {
	switch node.Kind {
	case 0:
		// Zero node: the input was empty.
		return NewNull(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NewNull(), nil
		}
		return fromYAMLNode(node.Content[0], expanding)
	case yaml.AliasNode:
		if expanding[node.Alias] {
			return nil, &yamlerrors.ParseError{
				Line:    node.Line,
				Column:  node.Column,
				Message: fmt.Sprintf("anchor %q expands through itself", node.Value),
			}
		}
		if expanding == nil {
			expanding = make(map[*yaml.Node]bool)
		}
		expanding[node.Alias] = true
		out, err := fromYAMLNode(node.Alias, expanding)
		delete(expanding, node.Alias)
		return out, err
	case yaml.MappingNode:
		out := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &yamlerrors.ParseError{
					Line:    keyNode.Line,
					Column:  keyNode.Column,
					Message: "mapping keys must be scalars",
				}
			}
			value, err := fromYAMLNode(node.Content[i+1], expanding)
			if err != nil {
				return nil, err
			}
			out.Set(keyNode.Value, value)
		}
		return out, nil
	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(node.Content))}
		for _, item := range node.Content {
			child, err := fromYAMLNode(item, expanding)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarFromYAML(node), nil
	default:
		return nil, &yamlerrors.ParseError{
			Line:    node.Line,
			Column:  node.Column,
			Message: fmt.Sprintf("unsupported node kind %d", node.Kind),
		}
	}
}

// scalarFromYAML converts a scalar node using its resolved tag. Text that
// does not actually parse under its tag falls back to a string scalar.
func scalarFromYAML(node *yaml.Node) *Node {
	switch node.Tag {
	case "!!null":
		return NewNull()
	case "!!bool":
		switch strings.ToLower(node.Value) {
		case "true", "yes", "on":
			return NewBool(true)
		case "false", "no", "off":
			return NewBool(false)
		}
		return NewString(node.Value)
	case "!!int":
		// Base 0 covers the 0x/0o/0b forms the resolver accepts.
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return NewInt(i)
		}
		return NewString(node.Value)
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return NewFloat(f)
		}
		switch strings.ToLower(node.Value) {
		case ".inf", "+.inf":
			return NewFloat(math.Inf(1))
		case "-.inf":
			return NewFloat(math.Inf(-1))
		case ".nan":
			return NewFloat(math.NaN())
		}
		return NewString(node.Value)
	default:
		return NewString(node.Value)
	}
}

// Serialize renders the tree as canonical YAML: two-space indent, block
// style, mapping keys in insertion order. This is the output used whenever
// a format-preserving patch is not possible.
func Serialize(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(n)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func toYAML(n *Node) *yaml.Node {
	if n == nil {
		return scalarNode("!!null", "null")
	}
	switch n.Kind {
	case KindNull:
		return scalarNode("!!null", "null")
	case KindScalar:
		switch v := n.Value.(type) {
		case bool:
			return scalarNode("!!bool", strconv.FormatBool(v))
		case int64:
			return scalarNode("!!int", strconv.FormatInt(v, 10))
		case float64:
			return scalarNode("!!float", formatFloat(v))
		case string:
			return scalarNode("!!str", v)
		default:
			return scalarNode("!!str", fmt.Sprint(v))
		}
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(n.Pairs)*2)}
		for _, p := range n.Pairs {
			out.Content = append(out.Content, scalarNode("!!str", p.Key), toYAML(p.Value))
		}
		return out
	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(n.Items))}
		for _, item := range n.Items {
			out.Content = append(out.Content, toYAML(item))
		}
		return out
	default:
		return scalarNode("!!null", "null")
	}
}

// formatFloat renders a float the way it will be re-read: plain decimal
// notation, with the YAML spellings for infinities and NaN.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
