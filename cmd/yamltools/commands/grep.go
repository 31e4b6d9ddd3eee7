package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/internal/cliutil"
	"github.com/erraggy/yamltools/internal/stringutil"
	"github.com/erraggy/yamltools/search"
	"github.com/erraggy/yamltools/yamlerrors"
)

// GrepFlags contains flags for the grep command
type GrepFlags struct {
	Recursive bool
	Format    string
}

// GrepMatch is one search hit in structured grep output.
type GrepMatch struct {
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Path  string `json:"path" yaml:"path"`
	Value any    `json:"value" yaml:"value"`
}

// SetupGrepFlags creates and configures a FlagSet for the grep command.
// Returns the FlagSet and a GrepFlags struct with bound flag variables.
func SetupGrepFlags() (*flag.FlagSet, *GrepFlags) {
	fs := flag.NewFlagSet("grep", flag.ContinueOnError)
	flags := &GrepFlags{}

	fs.BoolVar(&flags.Recursive, "recursive", false, "accepted for compatibility; directories are always searched recursively")
	fs.BoolVar(&flags.Recursive, "R", false, "accepted for compatibility; directories are always searched recursively")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: yamltools grep [flags] <pattern> [path ...]\n\n")
		cliutil.Writef(fs.Output(), "Search YAML mapping keys by regex pattern and print the matching values.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable key: value lines\n")
		cliutil.Writef(fs.Output(), "  json            JSON array for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML list for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nPattern Matching:\n")
		cliutil.Writef(fs.Output(), "  The pattern is matched against full dotted key paths (for example\n")
		cliutil.Writef(fs.Output(), "  database.host). A match on a parent key reports the whole subtree\n")
		cliutil.Writef(fs.Output(), "  and does not descend into it.\n")
		cliutil.Writef(fs.Output(), "\nInput:\n")
		cliutil.Writef(fs.Output(), "  With no paths the document is read from stdin ('-' also means stdin).\n")
		cliutil.Writef(fs.Output(), "  Directory arguments are searched recursively for .yaml and .yml files.\n")
		cliutil.Writef(fs.Output(), "  The filename prefix is shown when searching multiple paths or a\n")
		cliutil.Writef(fs.Output(), "  directory.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  yamltools grep database config.yaml\n")
		cliutil.Writef(fs.Output(), "  yamltools grep '^server\\.' config.yaml deploy.yaml\n")
		cliutil.Writef(fs.Output(), "  yamltools grep password ./configs\n")
		cliutil.Writef(fs.Output(), "  cat config.yaml | yamltools grep port\n")
		cliutil.Writef(fs.Output(), "  yamltools grep --format json 'host$' config.yaml | jq '.[0].value'\n")
	}

	return fs, flags
}

// HandleGrep executes the grep command
func HandleGrep(args []string) error {
	fs, flags := SetupGrepFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("grep command requires a pattern argument")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	pattern := fs.Arg(0)
	paths := fs.Args()[1:]

	// Reject a bad pattern once before any file is read; the per-file search
	// would otherwise report it for every file in a directory walk.
	if _, err := regexp.Compile(pattern); err != nil {
		return &yamlerrors.PatternError{Pattern: pattern, Cause: err}
	}

	// The filename prefix is shown when searching more than one path
	// argument, or when the single argument is a directory.
	showFilename := len(paths) > 1
	if len(paths) == 1 {
		info, err := os.Stat(paths[0])
		showFilename = err == nil && info.IsDir()
	}

	out := &grepOutput{
		format:       flags.Format,
		showFilename: showFilename,
		width:        cliutil.TerminalWidth(),
		results:      []GrepMatch{},
	}

	if len(paths) == 0 {
		tree, err := readStdinTree()
		if err != nil {
			return err
		}
		matches, err := search.Search(tree, pattern)
		if err != nil {
			return err
		}
		out.emit("", matches)
		return out.finish()
	}

	for _, path := range paths {
		if err := grepPath(path, pattern, out); err != nil {
			return err
		}
	}
	return out.finish()
}

// grepOutput prints matches immediately in text mode and accumulates them
// for a single structured document in json and yaml modes.
type grepOutput struct {
	format       string
	showFilename bool
	width        int
	results      []GrepMatch
}

func (o *grepOutput) emit(file string, matches []search.Match) {
	for _, m := range matches {
		if o.format != FormatText {
			result := GrepMatch{Path: m.Path, Value: m.Value.Interface()}
			if o.showFilename {
				result.File = file
			}
			o.results = append(o.results, result)
			continue
		}
		line := formatMatch(m.Path, m.Value, o.width)
		if o.showFilename {
			fmt.Printf("%s:%s\n", file, line)
		} else {
			fmt.Println(line)
		}
	}
}

func (o *grepOutput) finish() error {
	if o.format == FormatText {
		return nil
	}
	return OutputStructured(o.results, o.format)
}

// grepPath searches one path argument: stdin for "-", a single file, or a
// directory walked recursively.
func grepPath(path, pattern string, out *grepOutput) error {
	if path == StdinFilePath {
		tree, err := readStdinTree()
		if err != nil {
			return err
		}
		matches, err := search.Search(tree, pattern)
		if err != nil {
			return err
		}
		out.emit(StdinFilePath, matches)
		return nil
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		matches, err := searchFile(path, pattern)
		if err != nil {
			return err
		}
		out.emit(path, matches)
		return nil
	case err == nil && info.IsDir():
		return grepDir(path, pattern, out)
	default:
		return fmt.Errorf("'%s' is not a file or directory", path)
	}
}

// grepDir searches every .yaml and .yml file under dir in lexical order.
// Files that fail to read or parse are reported on stderr and skipped.
func grepDir(dir, pattern string, out *grepOutput) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		matches, err := searchFile(path, pattern)
		if err != nil {
			cliutil.Writef(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		out.emit(path, matches)
		return nil
	})
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	return nil
}

func searchFile(file, pattern string) ([]search.Match, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	tree, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return search.Search(tree, pattern)
}

func readStdinTree() (*document.Node, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading from stdin: %w", err)
	}
	tree, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing stdin: %w", err)
	}
	return tree, nil
}

// formatMatch renders one match for text output: mappings as an indented
// block, scalars on one line truncated to the terminal width, nulls
// untruncated.
func formatMatch(path string, value *document.Node, width int) string {
	if value == nil {
		return path + ": null"
	}
	switch value.Kind {
	case document.KindMapping:
		return formatMappingMatch(path, value)
	case document.KindNull:
		return path + ": null"
	case document.KindScalar:
		return stringutil.Truncate(fmt.Sprintf("%s: %v", path, value.Value), width)
	default:
		data, err := document.Serialize(value)
		if err != nil {
			return path + ": <complex>"
		}
		return stringutil.Truncate(path+": "+strings.TrimSpace(string(data)), width)
	}
}

// formatMappingMatch renders a whole mapping subtree under its path, each
// serialized line indented two spaces. Mapping output is never truncated.
func formatMappingMatch(path string, value *document.Node) string {
	data, err := document.Serialize(value)
	if err != nil {
		return path + ": <error>"
	}
	var b strings.Builder
	b.WriteString(path)
	b.WriteString(":")
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		b.WriteString("\n")
		if line != "" {
			b.WriteString("  ")
			b.WriteString(line)
		}
	}
	return b.String()
}
