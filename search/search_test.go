package search

import (
	"errors"
	"testing"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/yamlerrors"
)

func mustParse(t *testing.T, input string) *document.Node {
	t.Helper()
	n, err := document.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return n
}

func paths(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Path
	}
	return out
}

func TestMatchStopsRecursion(t *testing.T) {
	// A match on a parent returns the whole subtree as one result and
	// suppresses matches on its children.
	root := mustParse(t, "a:\n  b: 1\n  c: 2\n")

	matches, err := Search(root, "^a$")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches %v, want exactly 1", len(matches), paths(matches))
	}
	if matches[0].Path != "a" {
		t.Errorf("path = %q, want a", matches[0].Path)
	}
	if matches[0].Value.Kind != document.KindMapping || len(matches[0].Value.Pairs) != 2 {
		t.Errorf("matched value should be the whole {b, c} mapping, got %+v", matches[0].Value)
	}
}

func TestAlternation(t *testing.T) {
	root := mustParse(t, `dev:
  password: x
prod:
  password: y
staging:
  token: z
`)

	matches, err := Search(root, `(dev|prod)\.password`)
	if err != nil {
		t.Fatal(err)
	}
	got := paths(matches)
	want := []string{"dev.password", "prod.password"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnanchoredSubstring(t *testing.T) {
	root := mustParse(t, "database:\n  host: localhost\n")

	matches, err := Search(root, "host")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Path != "database.host" {
		t.Fatalf("got %v, want [database.host]", paths(matches))
	}
	if matches[0].Value.Value != "localhost" {
		t.Errorf("value = %v", matches[0].Value.Value)
	}
}

func TestInsertionOrderPreOrder(t *testing.T) {
	root := mustParse(t, `one:
  target: 1
two:
  nested:
    target: 2
target: 3
`)

	matches, err := Search(root, "target")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one.target", "two.nested.target", "target"}
	got := paths(matches)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSequencesAreOpaque(t *testing.T) {
	root := mustParse(t, `servers:
  - name: alpha
  - name: beta
`)

	// Keys inside sequence elements are not addressable and never match.
	matches, err := Search(root, "name")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("got %v, want no matches inside sequences", paths(matches))
	}

	// The sequence-valued key itself is still matchable.
	matches, err = Search(root, "^servers$")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Value.Kind != document.KindSequence {
		t.Errorf("sequence-valued key should match by its own path, got %v", paths(matches))
	}
}

func TestInvalidPatternFailsFast(t *testing.T) {
	root := mustParse(t, "a: 1\n")

	matches, err := Search(root, "(unclosed")
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
	if !errors.Is(err, yamlerrors.ErrPattern) {
		t.Errorf("error should match ErrPattern, got %v", err)
	}
	var patErr *yamlerrors.PatternError
	if !errors.As(err, &patErr) {
		t.Fatal("error should be a PatternError")
	}
	if patErr.Pattern != "(unclosed" {
		t.Errorf("pattern = %q", patErr.Pattern)
	}
	if matches != nil {
		t.Errorf("no partial results allowed, got %v", paths(matches))
	}
}

func TestEmptyPatternMatchesEveryTopLevelEntry(t *testing.T) {
	// The empty pattern matches every path, so the stop rule emits exactly
	// the top-level entries.
	root := mustParse(t, "a:\n  b: 1\nc: 2\n")

	matches, err := Search(root, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "c"}
	got := paths(matches)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNonMappingRoot(t *testing.T) {
	for _, input := range []string{"just a scalar\n", "- 1\n- 2\n", ""} {
		root := mustParse(t, input)
		matches, err := Search(root, ".*")
		if err != nil {
			t.Fatalf("Search over %q: %v", input, err)
		}
		if len(matches) != 0 {
			t.Errorf("non-mapping root %q should yield no matches, got %v", input, paths(matches))
		}
	}
}

func TestNoMatches(t *testing.T) {
	root := mustParse(t, "a: 1\n")
	matches, err := Search(root, "zzz")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("got %v, want none", paths(matches))
	}
}
