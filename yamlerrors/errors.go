// Package yamlerrors provides structured error types for yamltools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML parsing failures
//   - PatternError: invalid search patterns
//   - KeyNotFoundError: a required key path was absent from a document
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	err := ed.Copy("app.yaml", "db.host", "other.yaml", "db.host")
//	if err != nil {
//	    var nfErr *yamlerrors.KeyNotFoundError
//	    if errors.As(err, &nfErr) {
//	        // The source key does not exist; nfErr.Key and nfErr.Path say where.
//	    }
//	}
package yamlerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrEmptyPath indicates an empty key path (or empty path segment) was supplied.
	ErrEmptyPath = errors.New("empty key path")

	// ErrPattern indicates a search pattern failed to compile.
	ErrPattern = errors.New("invalid pattern")

	// ErrKeyNotFound indicates a required key path was absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a YAML document.
type ParseError struct {
	// Path is the file path or source identifier ("" when parsing raw text)
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// PatternError represents a search pattern that failed to compile.
type PatternError struct {
	// Pattern is the pattern text that was rejected
	Pattern string
	// Cause is the underlying regexp compile error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "invalid pattern"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" %q", e.Pattern)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// KeyNotFoundError represents a key path that was required but absent.
// It is returned by operations that need the source value to exist,
// such as copy and move; plain lookups report absence without an error.
type KeyNotFoundError struct {
	// Key is the dotted key path that was not found
	Key string
	// Path is the file the key was looked up in
	Path string
}

// Error returns a human-readable error message.
func (e *KeyNotFoundError) Error() string {
	msg := "key not found"
	if e.Key != "" {
		msg = fmt.Sprintf("key %q not found", e.Key)
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Unwrap returns nil as KeyNotFoundError has no underlying cause.
func (e *KeyNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
