package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tilemeta/structmeta/pkg/schema"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
	To     string // json, yaml, cbor
}

// RunConvert runs the convert command.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	doc, err := schema.ParseDocumentFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing input: %v\n", err)
		return exitCommandError
	}

	var data []byte
	switch opts.To {
	case "json", "":
		data, err = doc.EncodeJSON()
	case "yaml":
		data, err = doc.EncodeYAML()
	case "cbor":
		data, err = doc.EncodeCBOR()
	default:
		fmt.Fprintf(stderr, "Error: unknown target format %q\n", opts.To)
		return exitCommandError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding output: %v\n", err)
		return exitCommandError
	}

	if opts.Output == "" || opts.Output == "-" {
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		return exitSuccess
	}

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintf(stdout, "Converted %s -> %s\n", opts.Input, opts.Output)
	return exitSuccess
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.To, "to", "json", "Target format: json, yaml, cbor")
	fs.StringVar(&opts.Output, "o", "", "Output file (default stdout)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: structmeta convert [options] <file>

Options:
  --to FORMAT  Target format: json (default), yaml, cbor
  -o FILE      Output file (default stdout)

Examples:
  structmeta convert city.yaml -o city.json
  structmeta convert --to cbor city.json -o city.cbor`)
}
