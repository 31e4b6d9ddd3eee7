package patcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/keypath"
	"github.com/erraggy/yamltools/yamlerrors"
)

func mustParse(t *testing.T, src string) *document.Node {
	t.Helper()
	n, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return n
}

// edit parses src and applies fn to the tree, mirroring how callers
// produce an edited tree from the text they are about to patch.
func edit(t *testing.T, src string, fn func(*document.Node)) *document.Node {
	t.Helper()
	tree := mustParse(t, src)
	fn(tree)
	return tree
}

func TestPatchIdentity(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "simple mapping", src: "name: web\nport: 8080\n"},
		{name: "comments and blanks", src: "# config\nname: web\n\n# port section\nport: 8080\n"},
		{name: "nested", src: "server:\n  host: localhost\n  port: 8080\n"},
		{name: "no trailing newline", src: "name: web\nport: 8080"},
		{name: "sequence value", src: "hosts:\n  - alpha\n  - beta\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(tt.src, mustParse(t, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.src, got)
		})
	}
}

func TestPatchScalarChangePreservesFormatting(t *testing.T) {
	src := "# cfg\nkey1: value1\n\nkey2: value2\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "key1", document.NewString("newvalue1")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "# cfg\nkey1: newvalue1\n\nkey2: value2\n", got)
}

func TestPatchNestedScalarChange(t *testing.T) {
	src := "server:\n  host: localhost\n  port: 8080\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "server.port", document.NewInt(9090)))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "server:\n  host: localhost\n  port: 9090\n", got)
}

func TestPatchKeepsOriginalIndentWidth(t *testing.T) {
	src := "server:\n    host: localhost\n    port: 8080\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "server.port", document.NewInt(9090)))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "server:\n    host: localhost\n    port: 9090\n", got)
}

func TestPatchRemovesTopLevelKey(t *testing.T) {
	src := "key1: value1\nkey2: value2\nkey3: value3\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Unset(tree, "key2"))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "key1: value1\nkey3: value3\n", got)
}

func TestPatchRemovalCascades(t *testing.T) {
	src := "a:\n  b:\n    c: 1\n  d: 2\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Unset(tree, "a.b"))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  d: 2\n", got)
}

func TestPatchRemovalCommentRetention(t *testing.T) {
	// Comments deeper than the dropped block go with it; comments at the
	// block's own indentation stay.
	src := "a:\n  b:\n    # inner\n    c: 1\n  # kept\n  d: 2\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Unset(tree, "a.b"))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  # kept\n  d: 2\n", got)
}

func TestPatchChangeSupersedesOldBlock(t *testing.T) {
	src := "hosts:\n  - alpha\n  - beta\nnext: 1\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "hosts", document.NewString("single")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "hosts: single\nnext: 1\n", got)
}

func TestPatchBlankLineInsideChangedBlock(t *testing.T) {
	src := "hosts:\n  - alpha\n\n  - beta\nnext: 1\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "hosts", document.NewString("x")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "hosts: x\n\nnext: 1\n", got)
}

func TestPatchAppendsNewTopLevelKey(t *testing.T) {
	t.Run("trailing newline", func(t *testing.T) {
		src := "a: 1\n"
		edited := edit(t, src, func(tree *document.Node) {
			require.NoError(t, keypath.Set(tree, "new", document.NewString("x")))
		})

		got, err := Patch(src, edited)
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n\nnew: x\n", got)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		src := "a: 1"
		edited := edit(t, src, func(tree *document.Node) {
			require.NoError(t, keypath.Set(tree, "new", document.NewString("x")))
		})

		got, err := Patch(src, edited)
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n\nnew: x", got)
	})
}

func TestPatchNestedAdditionRebuilds(t *testing.T) {
	src := "a:\n  b: 1\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "a.b", document.NewInt(2)))
		require.NoError(t, keypath.Set(tree, "a.c", document.NewInt(3)))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: 2\n  c: 3\n", got)

	reparsed := mustParse(t, got)
	assert.True(t, reparsed.Equals(edited))
}

func TestPatchNewNestedMappingSerializes(t *testing.T) {
	// A brand-new nested mapping cannot be written by line edits, so the
	// whole document is re-serialized and the comment is lost.
	src := "x: 1\n# comment\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "a.b", document.NewString("v")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\na:\n  b: v\n", got)
}

func TestPatchShapeChangeSerializes(t *testing.T) {
	src := "db:\n  host: localhost\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "db", document.NewString("local")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "db: local\n", got)
}

func TestPatchStringQuoting(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "plain", want: "key: plain\n"},
		{name: "space", value: "has space", want: "key: 'has space'\n"},
		{name: "colon", value: "a:b", want: "key: 'a:b'\n"},
		{name: "empty", value: "", want: "key: ''\n"},
		{name: "hash prefix", value: "#hash", want: "key: '#hash'\n"},
		{name: "apostrophe without space", value: "don't", want: "key: don't\n"},
		{name: "apostrophe with space", value: "don't stop", want: "key: 'don''t stop'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "key: old\n"
			edited := edit(t, src, func(tree *document.Node) {
				require.NoError(t, keypath.Set(tree, "key", document.NewString(tt.value)))
			})

			got, err := Patch(src, edited)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatchScalarRendering(t *testing.T) {
	tests := []struct {
		name  string
		value *document.Node
		want  string
	}{
		{name: "bool", value: document.NewBool(true), want: "key: true\n"},
		{name: "int", value: document.NewInt(42), want: "key: 42\n"},
		{name: "float", value: document.NewFloat(3.5), want: "key: 3.5\n"},
		{name: "whole float", value: document.NewFloat(2.0), want: "key: 2\n"},
		{name: "null", value: document.NewNull(), want: "key: null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "key: old\n"
			edited := edit(t, src, func(tree *document.Node) {
				require.NoError(t, keypath.Set(tree, "key", tt.value))
			})

			got, err := Patch(src, edited)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatchMultilineStringRebuilds(t *testing.T) {
	src := "key: old\nother: 1\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "key", document.NewString("line1\nline2")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)

	reparsed := mustParse(t, got)
	assert.True(t, reparsed.Equals(edited))

	v, ok, err := keypath.Get(reparsed, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "line1\nline2", v.Value)
}

func TestPatchFlowStyleRemovalRebuilds(t *testing.T) {
	// The removed key has no line of its own, so the patch falls back to
	// rebuilding the document rather than leaving the key in place.
	src := "cfg: {a: 1, b: 2}\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Unset(tree, "cfg.a"))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "cfg:\n  b: 2\n", got)
}

func TestPatchQuotedKeyEditRebuilds(t *testing.T) {
	src := "\"port\": 8080\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "port", document.NewInt(9090)))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "port: 9090\n", got)
}

func TestPatchRemoveOnlyKey(t *testing.T) {
	src := "a: 1\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Unset(tree, "a"))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)
	assert.Equal(t, "\n", got)
}

func TestPatchParseError(t *testing.T) {
	_, err := Patch("key: [unclosed\n", document.NewMapping())
	require.Error(t, err)
	assert.ErrorIs(t, err, yamlerrors.ErrParse)
}

func TestPatchIdempotent(t *testing.T) {
	src := "# cfg\nkey1: value1\n\nkey2: value2\n"
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "key1", document.NewString("newvalue1")))
	})

	once, err := Patch(src, edited)
	require.NoError(t, err)

	twice, err := Patch(once, edited)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestPatchManyEditsAtOnce(t *testing.T) {
	src := strings.Join([]string{
		"# deployment config",
		"name: web",
		"replicas: 2",
		"",
		"server:",
		"  host: localhost",
		"  port: 8080",
		"  timeout: 30",
		"",
		"debug: true",
		"",
	}, "\n")
	edited := edit(t, src, func(tree *document.Node) {
		require.NoError(t, keypath.Set(tree, "replicas", document.NewInt(4)))
		require.NoError(t, keypath.Set(tree, "server.port", document.NewInt(9090)))
		require.NoError(t, keypath.Unset(tree, "server.timeout"))
		require.NoError(t, keypath.Unset(tree, "debug"))
		require.NoError(t, keypath.Set(tree, "owner", document.NewString("platform")))
	})

	got, err := Patch(src, edited)
	require.NoError(t, err)

	want := strings.Join([]string{
		"# deployment config",
		"name: web",
		"replicas: 4",
		"",
		"server:",
		"  host: localhost",
		"  port: 9090",
		"",
		"owner: platform",
		"",
	}, "\n")
	assert.Equal(t, want, got)

	reparsed := mustParse(t, got)
	assert.True(t, reparsed.Equals(edited))
}
