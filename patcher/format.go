package patcher

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/yamltools/document"
)

// formatValue renders a tree value for inline `key: value` output.
// Mappings and sequences render through the canonical serializer and are
// trimmed; callers must check the result for newlines before splicing it
// into a line.
func formatValue(n *document.Node) string {
	if n == nil {
		return "null"
	}
	switch n.Kind {
	case document.KindNull:
		return "null"
	case document.KindScalar:
		return formatScalar(n.Value)
	default:
		out, err := document.Serialize(n)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	}
}

func formatScalar(v any) string {
	switch value := v.(type) {
	case string:
		return formatString(value)
	case bool:
		return strconv.FormatBool(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return formatFloat(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatString single-quotes strings that plain YAML would misread on a
// key line: empty strings, strings containing a space or colon, and
// strings opening a comment.
func formatString(s string) string {
	if s == "" || strings.ContainsAny(s, " :") || strings.HasPrefix(s, "#") {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return s
}

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
