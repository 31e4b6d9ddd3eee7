// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes yamltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/yamltools"
	"github.com/erraggy/yamltools/editor"
)

const serverInstructions = `yamltools MCP server — searches and edits YAML documents while preserving their formatting.

Configuration: All defaults are configurable via YAMLTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- YAMLTOOLS_READ_ONLY (default: false) — reject the set, unset, copy, and move tools
- YAMLTOOLS_GREP_LIMIT (default: 100) — default result limit for the grep tool
- YAMLTOOLS_MAX_LIMIT (default: 1000) — hard cap on any requested limit
- YAMLTOOLS_MAX_INLINE_SIZE (default: 10485760) — maximum inline content size in bytes
- YAMLTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- YAMLTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for documents read from files
- YAMLTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content

Caching: Parsed documents are cached per session. File entries use path+mtime as key, so an edit through set, unset, copy, or move invalidates them automatically. A background sweeper removes expired entries every 60s.`

// fileEditor performs the edits behind the write tools. It logs through
// slog, which writes to stderr and keeps protocol traffic on stdout clean.
var fileEditor = &editor.Editor{Logger: editor.NewSlogAdapter(slog.Default())}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "yamltools", Version: yamltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "grep",
		Description: "Search YAML mapping keys by regular expression. The pattern is matched against full dotted key paths (for example database.host); a match on a parent key reports the whole subtree and does not descend into it. Provide exactly one of file, content, or dir; dir searches .yaml and .yml files recursively. Use offset/limit to paginate through results. Default limit is configurable via YAMLTOOLS_GREP_LIMIT (default 100).",
	}, handleGrep)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get",
		Description: "Read the value at a dotted key path in a YAML file. A missing key is reported as found=false, not an error.",
	}, handleGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Set values at dotted key paths in a YAML file. Comments, blank lines, and key order are preserved wherever possible. Intermediate mappings are created as needed. Values are stored as strings; the YAML parser re-derives their types on the next read. Disabled when YAMLTOOLS_READ_ONLY is set.",
	}, handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "unset",
		Description: "Remove keys from a YAML file, preserving the formatting of the rest of the document. Keys that do not exist are ignored. Disabled when YAMLTOOLS_READ_ONLY is set.",
	}, handleUnset)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy",
		Description: "Copy a value from one key to another, in the same file or a different one. A destination file that does not exist yet is created. An omitted dest_file or dest_key defaults to the source file or source key; at least one must be given. Disabled when YAMLTOOLS_READ_ONLY is set.",
	}, handleCopy)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move",
		Description: "Move a value from one key to another, in the same file or a different one. The copy and the source removal are sequential, not atomic: a failure in between can leave the value in both places. Disabled when YAMLTOOLS_READ_ONLY is set.",
	}, handleMove)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.GrepLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.GrepLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// errReadOnly is the error result returned by write tools when the server
// runs with YAMLTOOLS_READ_ONLY set.
func errReadOnly(tool string) *mcp.CallToolResult {
	return errResult(fmt.Errorf("the %s tool is disabled: server is running in read-only mode (YAMLTOOLS_READ_ONLY)", tool))
}
