// Package editor applies edit operations to YAML files on disk.
//
// Every operation follows the same shape: read the file, parse it, apply
// the mutation to a copy of the parsed tree, and write back the text
// produced by [patcher.Patch]. Comments, blank lines, key order, and
// indentation in the untouched parts of the file survive the edit
// whenever the patcher can express it as line surgery; structural edits
// fall back to a canonical re-serialization of the whole document. A copy
// destination that does not exist yet is always created from the
// canonical serializer, since there is no formatting to preserve.
//
// Operations are synchronous and not atomic across files: a move that
// fails after writing the destination leaves the value present in both
// files. Callers editing the same file concurrently must provide their
// own locking.
package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/yamltools/document"
	"github.com/erraggy/yamltools/internal/fileutil"
	"github.com/erraggy/yamltools/keypath"
	"github.com/erraggy/yamltools/patcher"
	"github.com/erraggy/yamltools/yamlerrors"
)

// Editor performs edit operations against YAML files on disk.
// The zero value is ready to use.
type Editor struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates an Editor configured by the given options.
func New(opts ...Option) (*Editor, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("editor: invalid options: %w", err)
	}
	return &Editor{Logger: cfg.logger}, nil
}

// log returns the configured logger, or a no-op logger if none is set.
func (e *Editor) log() Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return NopLogger{}
}

// Update is a single assignment applied by Set: Value is stored at the
// dotted key path Path. Values are written as string scalars; the YAML
// parser re-derives their types on the next read.
type Update struct {
	// Path is the dotted key path to assign
	Path string
	// Value is the text to store at Path
	Value string
}

// Set applies every update to the file and writes it back, preserving the
// file's original formatting. Intermediate mappings are created as needed,
// and existing values at the target paths are overwritten.
func (e *Editor) Set(file string, updates []Update) error {
	original, tree, err := e.load(file)
	if err != nil {
		return err
	}
	edited := tree.Clone()
	for _, u := range updates {
		if err := keypath.Set(edited, u.Path, document.NewString(u.Value)); err != nil {
			return err
		}
	}
	e.log().Debug("applying updates", "file", file, "count", len(updates))
	return e.patchAndWrite(file, original, edited)
}

// Unset removes every key path from the file and writes it back, preserving
// the file's original formatting. Paths that do not exist are ignored; the
// file is rewritten either way.
func (e *Editor) Unset(file string, paths []string) error {
	original, tree, err := e.load(file)
	if err != nil {
		return err
	}
	edited := tree.Clone()
	for _, p := range paths {
		if err := keypath.Unset(edited, p); err != nil {
			return err
		}
	}
	e.log().Debug("removing keys", "file", file, "count", len(paths))
	return e.patchAndWrite(file, original, edited)
}

// Copy reads the value at srcPath in srcFile and stores it at dstPath in
// dstFile. An existing destination file keeps its formatting; a missing one
// is created. The source file is never modified. Source and destination may
// name the same file.
//
// A missing source key is reported as a [yamlerrors.KeyNotFoundError].
func (e *Editor) Copy(srcFile, srcPath, dstFile, dstPath string) error {
	_, srcTree, err := e.load(srcFile)
	if err != nil {
		return err
	}
	value, found, err := keypath.Get(srcTree, srcPath)
	if err != nil {
		return err
	}
	if !found {
		return &yamlerrors.KeyNotFoundError{Key: srcPath, Path: srcFile}
	}
	value = value.Clone()

	dstText, dstTree, err := e.load(dstFile)
	switch {
	case err == nil:
		edited := dstTree.Clone()
		if err := keypath.Set(edited, dstPath, value); err != nil {
			return err
		}
		e.log().Debug("copying value", "source", srcFile+":"+srcPath, "dest", dstFile+":"+dstPath)
		return e.patchAndWrite(dstFile, dstText, edited)
	case errors.Is(err, os.ErrNotExist):
		fresh := document.NewMapping()
		if err := keypath.Set(fresh, dstPath, value); err != nil {
			return err
		}
		out, err := document.Serialize(fresh)
		if err != nil {
			return err
		}
		e.log().Info("creating destination file", "file", dstFile)
		return e.write(dstFile, out)
	default:
		return err
	}
}

// Move copies the value from srcPath in srcFile to dstPath in dstFile and
// then removes it from the source. The two writes are sequential, not
// atomic: a failure after the destination write leaves the value present
// in both files. Moving a key onto itself (same file, same path) nets to
// a deletion.
func (e *Editor) Move(srcFile, srcPath, dstFile, dstPath string) error {
	if err := e.Copy(srcFile, srcPath, dstFile, dstPath); err != nil {
		return err
	}
	// Re-read rather than reuse the copy's parse: when source and
	// destination are the same file, the copy just rewrote it.
	original, tree, err := e.load(srcFile)
	if err != nil {
		return err
	}
	edited := tree.Clone()
	if err := keypath.Unset(edited, srcPath); err != nil {
		return err
	}
	e.log().Debug("removing moved key", "file", srcFile, "key", srcPath)
	return e.patchAndWrite(srcFile, original, edited)
}

// load reads and parses a YAML file, returning both the raw text and the
// parsed tree. Parse failures carry the file path.
func (e *Editor) load(file string) (string, *document.Node, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", nil, fmt.Errorf("editor: failed to read file %s: %w", file, err)
	}
	tree, err := document.Parse(data)
	if err != nil {
		var pe *yamlerrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = file
			return "", nil, pe
		}
		return "", nil, err
	}
	return string(data), tree, nil
}

// patchAndWrite rewrites file so that it parses to edited, keeping the
// original formatting wherever the patcher allows.
func (e *Editor) patchAndWrite(file, original string, edited *document.Node) error {
	patched, err := patcher.Patch(original, edited)
	if err != nil {
		return err
	}
	return e.write(file, []byte(patched))
}

func (e *Editor) write(file string, data []byte) error {
	if err := os.WriteFile(file, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("editor: failed to write file %s: %w", file, err)
	}
	return nil
}
