package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/yamltools/internal/cliutil"
	"github.com/erraggy/yamltools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: yamltools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdio, exposing the grep,\n")
		cliutil.Writef(fs.Output(), "get, set, unset, copy, and move tools to MCP clients. The server runs\n")
		cliutil.Writef(fs.Output(), "until the client disconnects or the process is interrupted.\n\n")
		cliutil.Writef(fs.Output(), "Configuration (environment variables):\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_READ_ONLY             reject set/unset/copy/move (default false)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_GREP_LIMIT            default grep page size (default 100)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_MAX_LIMIT             maximum grep page size (default 1000)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_MAX_INLINE_SIZE       maximum inline content bytes (default 10485760)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_CACHE_ENABLED         cache parsed documents (default true)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_CACHE_MAX_SIZE        cached document count (default 10)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_CACHE_FILE_TTL        file entry lifetime (default 15m)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_CACHE_CONTENT_TTL     inline entry lifetime (default 15m)\n")
		cliutil.Writef(fs.Output(), "  YAMLTOOLS_CACHE_SWEEP_INTERVAL  expired entry sweep cadence (default 60s)\n")
		cliutil.Writef(fs.Output(), "\nExample client configuration:\n")
		cliutil.Writef(fs.Output(), "  {\"mcpServers\": {\"yamltools\": {\"command\": \"yamltools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
