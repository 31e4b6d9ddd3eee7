// Package yamltools provides tools for searching and editing YAML files
// while preserving their formatting.
//
// yamltools edits YAML the way a careful human would: changed lines are
// rewritten, and every untouched line keeps its comments, blank lines,
// quoting, and key order byte for byte. Searching matches regex patterns
// against dotted key paths rather than raw text, so results follow the
// document structure instead of its layout.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - document: the in-memory tree model and YAML codec
//   - keypath: dotted key path resolution (get, set, unset)
//   - search: regex search over the dotted key paths of a tree
//   - differ: structural comparison of two trees
//   - patcher: format-preserving application of tree changes to source text
//   - editor: file-level set, unset, copy, and move operations
//
// The editor is the high-level entry point; the packages below it are
// usable on their own.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/yamltools
//
// # Quick Start
//
// Set a value in a file, preserving its formatting:
//
//	import "github.com/erraggy/yamltools/editor"
//
//	var ed editor.Editor
//	err := ed.Set("config.yaml", []editor.Update{
//		{Path: "server.port", Value: "9090"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Search a document for keys matching a pattern:
//
//	import (
//		"github.com/erraggy/yamltools/document"
//		"github.com/erraggy/yamltools/search"
//	)
//
//	tree, err := document.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	matches, err := search.Search(tree, `^database\.`)
//	for _, m := range matches {
//		fmt.Printf("%s\n", m.Path)
//	}
//
// # Editor Package
//
// The editor package implements the four file operations. Every operation
// follows the same shape: read the file, parse it, apply the mutation to a
// copy of the parsed tree, and write back the text produced by the patcher,
// so unchanged lines survive byte for byte.
//
//	var ed editor.Editor
//	err := ed.Copy("config.yaml", "database", "prod.yaml", "database")
//
// Copy creates the destination file when it does not exist. Move is a copy
// followed by removal of the source key; when source and destination name
// the same file the file is rewritten twice.
//
// An Editor with a Logger reports per-operation details at debug level:
//
//	ed, err := editor.New(editor.WithLogger(editor.NewSlogAdapter(slog.Default())))
//
// # Document and Keypath Packages
//
// The document package models parsed YAML as ordered mappings, sequences,
// and typed scalars. The model deliberately carries less than full YAML:
// anchors, flow style, and multi-document streams do not survive a round
// trip. Mapping key order is preserved on parse and serialize but ignored
// by equality.
//
// The keypath package resolves dotted paths against a tree:
//
//	node, found, err := keypath.Get(tree, "database.host")
//	err = keypath.Set(tree, "server.port", document.NewString("8080"))
//	err = keypath.Unset(tree, "debug")
//
// Set creates intermediate mappings as needed; Unset of an absent key is a
// successful no-op.
//
// # Search Package
//
// Search walks mapping entries depth-first and tests each full dotted path
// against an unanchored regex. A match on a parent key reports the whole
// subtree and stops descent, so a pattern matching both a parent and its
// children reports only the parent. Sequence elements are treated as
// opaque values and never descended into.
//
// # Differ and Patcher Packages
//
// The differ compares two trees and reports added, removed, and modified
// key paths, along with a verdict on whether the changes are simple enough
// for line-level patching. The patcher consumes that verdict: when every
// change is a scalar-for-scalar replacement on an existing line it rewrites
// only those lines; otherwise it falls back to serializing the edited tree,
// which normalizes formatting and drops comments. Additions of new
// top-level keys are appended to the end of the file.
//
//	patched, err := patcher.Patch(originalText, editedTree)
//
// # Common Workflows
//
// Promote a block between environment files:
//
//	var ed editor.Editor
//	if err := ed.Copy("staging.yaml", "database", "prod.yaml", "database"); err != nil {
//		log.Fatal(err)
//	}
//
// Rename a key in place:
//
//	if err := ed.Move("config.yaml", "timeout", "config.yaml", "server.timeout"); err != nil {
//		log.Fatal(err)
//	}
//
// Audit many files for a setting:
//
//	yamltools grep 'password' ./configs
//
// # Limitations
//
//   - Values set through the editor are always strings; "8080" stays quoted
//     as a string scalar where the YAML scalar 8080 would be an integer
//   - Anchors and aliases are expanded on parse and do not survive editing
//   - Only the first document of a multi-document stream is read
//   - Sequence elements cannot be addressed by key paths; a sequence is
//     replaced or kept as a whole
//   - Edits that restructure a document (new nested keys under existing
//     scalars, multi-line strings) fall back to full re-serialization,
//     which drops comments in the rewritten file
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - File I/O errors: wrapped with the file path, matchable with
//     errors.Is (e.g., os.ErrNotExist)
//   - Parse errors: yamlerrors.ParseError with line, column, and file path
//   - Bad patterns: yamlerrors.PatternError wrapping the regexp error
//   - Missing copy/move sources: yamlerrors.KeyNotFoundError
//
// Sentinel values (yamlerrors.ErrParse, ErrPattern, ErrKeyNotFound,
// ErrEmptyPath, ErrConfig) support errors.Is checks across wrapping.
//
// # Command-Line Interface
//
// In addition to the library packages, yamltools provides a command-line
// interface:
//
//	# Search keys by regex (stdin or files or directories)
//	yamltools grep database config.yaml
//
//	# Set values at dotted paths
//	yamltools set config.yaml server.port=9090
//
//	# Remove keys
//	yamltools unset config.yaml database.password
//
//	# Copy and move values between keys and files
//	yamltools cp config.yaml:database prod.yaml:
//	yamltools mv config.yaml:legacy.timeout server.timeout
//
// Install the CLI:
//
//	go install github.com/erraggy/yamltools/cmd/yamltools@latest
//
// # MCP Server
//
// yamltools mcp runs a Model Context Protocol server over stdio exposing
// grep, get, set, unset, copy, and move tools. The server caches parsed
// documents between calls and is configured through YAMLTOOLS_* environment
// variables; YAMLTOOLS_READ_ONLY=true rejects the editing tools.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/yamltools
//   - YAML Specification: https://yaml.org/spec/
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/yamltools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package yamltools
