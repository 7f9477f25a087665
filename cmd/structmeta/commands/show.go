package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tilemeta/structmeta/pkg/propview"
	"github.com/tilemeta/structmeta/pkg/schema"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format string // text, json, yaml
	Class  string // filter by class ID
	File   string
}

// ShowOutput represents the document for display.
type ShowOutput struct {
	File     string          `json:"file,omitempty" yaml:"file,omitempty"`
	SchemaID string          `json:"schema_id,omitempty" yaml:"schema_id,omitempty"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Version  string          `json:"version,omitempty" yaml:"version,omitempty"`
	Classes  []ClassOutput   `json:"classes,omitempty" yaml:"classes,omitempty"`
	Tables   []int64         `json:"table_counts,omitempty" yaml:"table_counts,omitempty"`
	Textures int             `json:"textures,omitempty" yaml:"textures,omitempty"`
}

// ClassOutput represents one class and its resolved properties.
type ClassOutput struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name,omitempty" yaml:"name,omitempty"`
	Properties []PropertyOutput `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// PropertyOutput represents one property declaration.
type PropertyOutput struct {
	ID       string `json:"id" yaml:"id"`
	Shape    string `json:"shape,omitempty" yaml:"shape,omitempty"`
	Status   string `json:"status" yaml:"status"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Count    int64  `json:"count,omitempty" yaml:"count,omitempty"`
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printShowUsage(stderr)
		return exitCommandError
	}

	doc, err := schema.ParseDocumentFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing file: %v\n", err)
		return exitCommandError
	}

	output := buildShowOutput(opts.File, doc, opts.Class)

	switch opts.Format {
	case "json":
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(output)
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding YAML: %v\n", err)
			return exitCommandError
		}
		fmt.Fprint(stdout, string(data))
	case "text", "":
		printShowText(stdout, output)
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", opts.Format)
		return exitCommandError
	}

	return exitSuccess
}

func buildShowOutput(file string, doc *schema.Document, classFilter string) *ShowOutput {
	output := &ShowOutput{File: file, Textures: len(doc.PropertyTextures)}
	for _, table := range doc.PropertyTables {
		output.Tables = append(output.Tables, table.Count)
	}

	if doc.Schema == nil {
		return output
	}
	output.SchemaID = doc.Schema.ID
	output.Name = doc.Schema.Name
	output.Version = doc.Schema.Version

	classIDs := make([]string, 0, len(doc.Schema.Classes))
	for id := range doc.Schema.Classes {
		if classFilter != "" && id != classFilter {
			continue
		}
		classIDs = append(classIDs, id)
	}
	sort.Strings(classIDs)

	for _, classID := range classIDs {
		class := doc.Schema.Classes[classID]
		co := ClassOutput{ID: classID, Name: class.Name}

		propIDs := make([]string, 0, len(class.Properties))
		for id := range class.Properties {
			propIDs = append(propIDs, id)
		}
		sort.Strings(propIDs)

		for _, propID := range propIDs {
			cp := class.Properties[propID]
			po := PropertyOutput{ID: propID, Required: cp.Required}

			shape, ok := propview.ShapeOf(cp)
			if !ok {
				po.Shape = cp.Type
				po.Status = "not viewable"
			} else {
				view := propview.View(shape, cp)
				po.Shape = shape.String()
				po.Status = view.Status().String()
				po.Count = view.ArrayCount()
			}
			co.Properties = append(co.Properties, po)
		}
		output.Classes = append(output.Classes, co)
	}

	return output
}

func printShowText(w io.Writer, output *ShowOutput) {
	fmt.Fprintf(w, "File: %s\n", output.File)
	if output.SchemaID != "" {
		fmt.Fprintf(w, "Schema: %s", output.SchemaID)
		if output.Name != "" {
			fmt.Fprintf(w, " (%s)", output.Name)
		}
		if output.Version != "" {
			fmt.Fprintf(w, " version %s", output.Version)
		}
		fmt.Fprintln(w)
	}

	for _, class := range output.Classes {
		fmt.Fprintf(w, "\nClass %s", class.ID)
		if class.Name != "" {
			fmt.Fprintf(w, " (%s)", class.Name)
		}
		fmt.Fprintln(w)
		for _, prop := range class.Properties {
			fmt.Fprintf(w, "  %-20s %-24s %s", prop.ID, prop.Shape, prop.Status)
			if prop.Required {
				fmt.Fprint(w, " [required]")
			}
			if prop.Count > 0 {
				fmt.Fprintf(w, " [count=%d]", prop.Count)
			}
			fmt.Fprintln(w)
		}
	}

	if len(output.Tables) > 0 {
		fmt.Fprintf(w, "\nProperty tables: %d", len(output.Tables))
		fmt.Fprintln(w)
	}
	if output.Textures > 0 {
		fmt.Fprintf(w, "Property textures: %d\n", output.Textures)
	}
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format: text, json, yaml")
	fs.StringVar(&opts.Class, "class", "", "Show only the given class")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: structmeta show [options] <file>

Options:
  --format FORMAT  Output format: text (default), json, yaml
  --class ID       Show only the given class

Examples:
  structmeta show city.json
  structmeta show --format json --class building city.json`)
}
