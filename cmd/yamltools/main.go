package main

import (
	"fmt"
	"os"

	"github.com/erraggy/yamltools"
	"github.com/erraggy/yamltools/cmd/yamltools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("yamltools v%s\n", yamltools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "grep":
		if err := commands.HandleGrep(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "set":
		if err := commands.HandleSet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "unset":
		if err := commands.HandleUnset(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "cp":
		if err := commands.HandleCp(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mv":
		if err := commands.HandleMv(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`yamltools - YAML search and format-preserving edit tools

Usage:
  yamltools <command> [options]

Commands:
  grep        Search YAML keys by regex pattern (reads stdin if no paths given)
  set         Set values at dotted key paths in a YAML file
  unset       Remove keys from a YAML file
  cp          Copy a value from one key to another (same or different file)
  mv          Move a value from one key to another (deletes the source key)
  mcp         Run a Model Context Protocol server over stdio
  version     Show version information
  help        Show this help message

Examples:
  yamltools grep database config.yaml
  yamltools grep -R 'password' ./configs
  cat config.yaml | yamltools grep port
  yamltools set config.yaml server.port=9090 debug=false
  yamltools unset config.yaml database.password
  yamltools cp config.yaml:database prod.yaml:
  yamltools mv config.yaml:legacy.timeout server.timeout

Run 'yamltools <command> --help' for more information on a command.`)
}
