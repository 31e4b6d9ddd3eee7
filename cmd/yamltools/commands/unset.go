package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/yamltools/editor"
	"github.com/erraggy/yamltools/internal/cliutil"
)

// SetupUnsetFlags creates and configures a FlagSet for the unset command.
func SetupUnsetFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("unset", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: yamltools unset <file> <key> [key ...]\n\n")
		cliutil.Writef(fs.Output(), "Remove keys from a YAML file. Comments, blank lines, and the order of\n")
		cliutil.Writef(fs.Output(), "the remaining keys are preserved wherever possible.\n\n")
		cliutil.Writef(fs.Output(), "Key Paths:\n")
		cliutil.Writef(fs.Output(), "  Keys use dotted paths (database.password). Removing a key that does\n")
		cliutil.Writef(fs.Output(), "  not exist leaves the file unchanged.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  yamltools unset config.yaml debug\n")
		cliutil.Writef(fs.Output(), "  yamltools unset config.yaml database.password database.username\n")
	}

	return fs
}

// HandleUnset executes the unset command
func HandleUnset(args []string) error {
	fs := SetupUnsetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("unset command requires a file argument")
	}

	file := fs.Arg(0)
	keys := fs.Args()[1:]
	if len(keys) == 0 {
		fs.Usage()
		return fmt.Errorf("unset requires at least one key")
	}

	var ed editor.Editor
	return ed.Unset(file, keys)
}
