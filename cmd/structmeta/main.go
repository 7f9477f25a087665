// structmeta is a CLI tool for structural-metadata validation,
// inspection, and conversion.
package main

import (
	"fmt"
	"os"

	"github.com/tilemeta/structmeta/cmd/structmeta/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("structmeta version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`structmeta - structural-metadata validation and conversion tool

Usage:
  structmeta <command> [options] [files...]

Commands:
  validate   Resolve every property declaration and report failures
  show       Display document contents and resolved property shapes
  convert    Convert documents between JSON, YAML and CBOR

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  structmeta validate city.json
  structmeta validate --strict --json schemas/*.yaml
  structmeta show --format json city.json
  structmeta convert --to cbor city.json -o city.cbor

For command-specific help, run:
  structmeta <command> --help`)
}
