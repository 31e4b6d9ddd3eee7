package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/yamltools/editor"
	"github.com/erraggy/yamltools/internal/cliutil"
)

// SetupSetFlags creates and configures a FlagSet for the set command.
func SetupSetFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: yamltools set <file> <key=value> [key=value ...]\n\n")
		cliutil.Writef(fs.Output(), "Set values at dotted key paths in a YAML file. Comments, blank lines,\n")
		cliutil.Writef(fs.Output(), "and key order are preserved wherever possible.\n\n")
		cliutil.Writef(fs.Output(), "Key Paths:\n")
		cliutil.Writef(fs.Output(), "  Keys use dotted paths (database.host). Intermediate mappings are\n")
		cliutil.Writef(fs.Output(), "  created as needed. Values are set as strings; the value may contain\n")
		cliutil.Writef(fs.Output(), "  '=' characters and may be empty.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  yamltools set config.yaml server.port=9090\n")
		cliutil.Writef(fs.Output(), "  yamltools set config.yaml database.host=db.local database.port=5432\n")
		cliutil.Writef(fs.Output(), "  yamltools set config.yaml url=http://example.com?a=b\n")
	}

	return fs
}

// HandleSet executes the set command
func HandleSet(args []string) error {
	fs := SetupSetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("set command requires a file argument")
	}

	file := fs.Arg(0)
	pairs := fs.Args()[1:]
	if len(pairs) == 0 {
		fs.Usage()
		return fmt.Errorf("set requires at least one key=value pair")
	}

	updates := make([]editor.Update, 0, len(pairs))
	for _, pair := range pairs {
		key, value, err := ParseKeyValue(pair)
		if err != nil {
			return err
		}
		updates = append(updates, editor.Update{Path: key, Value: value})
	}

	var ed editor.Editor
	return ed.Set(file, updates)
}
