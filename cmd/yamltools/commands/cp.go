package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/yamltools/editor"
	"github.com/erraggy/yamltools/internal/cliutil"
)

// SetupCpFlags creates and configures a FlagSet for the cp command.
func SetupCpFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("cp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: yamltools cp <file.yaml:key.path> [destination]\n\n")
		cliutil.Writef(fs.Output(), "Copy a value from one key to another, in the same file or a different\n")
		cliutil.Writef(fs.Output(), "one. A destination file that does not exist yet is created.\n\n")
		cliutil.Writef(fs.Output(), "Destination:\n")
		cliutil.Writef(fs.Output(), "  other.yaml:new.key  different file and key\n")
		cliutil.Writef(fs.Output(), "  other.yaml:         different file, same key\n")
		cliutil.Writef(fs.Output(), "  new.key             same file, different key (':new.key' also works)\n")
		cliutil.Writef(fs.Output(), "  An omitted side defaults to the source file or source key; at least\n")
		cliutil.Writef(fs.Output(), "  one side must be given.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  yamltools cp config.yaml:database prod.yaml:\n")
		cliutil.Writef(fs.Output(), "  yamltools cp config.yaml:server.port backup.port\n")
		cliutil.Writef(fs.Output(), "  yamltools cp dev.yaml:logging prod.yaml:logging\n")
	}

	return fs
}

// HandleCp executes the cp command
func HandleCp(args []string) error {
	fs := SetupCpFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("cp command requires a source file:key argument")
	}

	srcFile, srcKey, err := ParseFileKey(fs.Arg(0))
	if err != nil {
		return err
	}

	var destFile, destKey string
	switch fs.NArg() {
	case 1:
		return fmt.Errorf("destination file and destination key cannot both be omitted")
	case 2:
		destFile, destKey, err = ParseOptionalFileKey(fs.Arg(1))
		if err != nil {
			return err
		}
	default:
		fs.Usage()
		return fmt.Errorf("cp accepts at most one destination argument")
	}

	if destFile == "" {
		destFile = srcFile
	}
	if destKey == "" {
		destKey = srcKey
	}

	var ed editor.Editor
	return ed.Copy(srcFile, srcKey, destFile, destKey)
}
