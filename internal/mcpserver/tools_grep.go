package mcpserver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/yamltools/internal/options"
	"github.com/erraggy/yamltools/search"
	"github.com/erraggy/yamltools/yamlerrors"
)

type grepInput struct {
	Pattern string `json:"pattern"           jsonschema:"Regular expression matched against full dotted key paths"`
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML document text"`
	Dir     string `json:"dir,omitempty"     jsonschema:"Directory searched recursively for .yaml and .yml files"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Skip the first N matches (for pagination)"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum number of matches to return (default 100)"`
}

type grepMatch struct {
	File  string `json:"file,omitempty"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type grepOutput struct {
	Total    int         `json:"total"`
	Returned int         `json:"returned"`
	Matches  []grepMatch `json:"matches,omitempty"`
	Summary  string      `json:"summary"`
}

func handleGrep(_ context.Context, _ *mcp.CallToolRequest, input grepInput) (*mcp.CallToolResult, grepOutput, error) {
	if input.Pattern == "" {
		return errResult(fmt.Errorf("pattern must be provided")), grepOutput{}, nil
	}
	if err := options.ValidateSingleInputSource(
		"exactly one of file, content, or dir must be provided",
		"exactly one of file, content, or dir must be provided",
		input.File != "", input.Content != "", input.Dir != "",
	); err != nil {
		return errResult(err), grepOutput{}, nil
	}
	if _, err := regexp.Compile(input.Pattern); err != nil {
		return errResult(&yamlerrors.PatternError{Pattern: input.Pattern, Cause: err}), grepOutput{}, nil
	}

	var all []grepMatch
	var summary string
	if input.Dir != "" {
		matches, searched, skipped, err := grepDirectory(input.Dir, input.Pattern)
		if err != nil {
			return errResult(err), grepOutput{}, nil
		}
		all = matches
		summary = fmt.Sprintf("%d matches for %q across %d files", len(all), input.Pattern, searched)
		if skipped > 0 {
			summary += fmt.Sprintf(" (%d files skipped)", skipped)
		}
	} else {
		tree, err := resolveTree(input.File, input.Content)
		if err != nil {
			return errResult(err), grepOutput{}, nil
		}
		found, err := search.Search(tree, input.Pattern)
		if err != nil {
			return errResult(err), grepOutput{}, nil
		}
		all = makeSlice[grepMatch](len(found))
		for _, m := range found {
			all = append(all, grepMatch{Path: m.Path, Value: m.Value.Interface()})
		}
		summary = fmt.Sprintf("%d matches for %q", len(all), input.Pattern)
	}

	output := grepOutput{Total: len(all), Summary: summary}
	output.Matches = paginate(all, input.Offset, input.Limit)
	output.Returned = len(output.Matches)
	return nil, output, nil
}

// grepDirectory searches every .yaml and .yml file under dir in lexical
// order. Files that fail to read or parse are skipped and counted rather
// than failing the whole search.
func grepDirectory(dir, pattern string) (matches []grepMatch, searched, skipped int, err error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, 0, 0, fmt.Errorf("%q is not a directory", dir)
	}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		tree, err := resolveTree(path, "")
		if err != nil {
			skipped++
			return nil
		}
		searched++
		found, err := search.Search(tree, pattern)
		if err != nil {
			return err
		}
		for _, m := range found {
			matches = append(matches, grepMatch{File: path, Path: m.Path, Value: m.Value.Interface()})
		}
		return nil
	})
	if walkErr != nil {
		return nil, 0, 0, fmt.Errorf("reading directory %s: %w", dir, walkErr)
	}
	return matches, searched, skipped, nil
}
