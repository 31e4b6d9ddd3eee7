// Package commands provides CLI command handlers for yamltools.
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseKeyValue splits a key=value argument at the first '='. The value may
// contain further '=' characters and may be empty; the key must be non-empty.
func ParseKeyValue(arg string) (key, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid key=value pair: %s", arg)
	}
	return key, value, nil
}

// ParseFileKey parses a required source argument of the form
// file.yaml:key.path, split at the first ':'. Both sides must be non-empty.
func ParseFileKey(arg string) (file, key string, err error) {
	file, key, ok := strings.Cut(arg, ":")
	if !ok || file == "" || key == "" {
		return "", "", fmt.Errorf("invalid file:key pair: %s (expected format: file.yaml:key.path)", arg)
	}
	return file, key, nil
}

// ParseOptionalFileKey parses a destination argument for cp and mv. With a
// ':' the two sides fill file and key independently and an empty side is
// reported as omitted (empty string); without one the whole argument is the
// key. At least one side must be non-empty.
func ParseOptionalFileKey(arg string) (file, key string, err error) {
	before, after, ok := strings.Cut(arg, ":")
	if ok {
		if before == "" && after == "" {
			return "", "", fmt.Errorf("invalid file:key pair: %s (file and key cannot both be empty)", arg)
		}
		return before, after, nil
	}
	if arg == "" {
		return "", "", fmt.Errorf("key cannot be empty")
	}
	return "", arg, nil
}
