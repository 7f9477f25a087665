package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tilemeta/structmeta/pkg/lint"
	"github.com/tilemeta/structmeta/pkg/log"
	"github.com/tilemeta/structmeta/pkg/schema"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Strict  bool
	JSON    bool
	Verbose bool
	LogFile string
	Files   []string
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	var logger log.Logger = log.NoopLogger{}
	if opts.LogFile != "" {
		fileLogger, err := log.NewFileLogger(opts.LogFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
			return exitCommandError
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	runID := uuid.NewString()

	hasErrors := false
	results := make(map[string]*ValidationOutput)

	for _, file := range opts.Files {
		result := validateFile(file, runID, logger, opts)
		results[file] = result

		if !result.Valid {
			hasErrors = true
		}

		if !opts.JSON {
			printValidationResult(stdout, file, result, opts.Verbose)
		}
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(output))
	}

	if hasErrors {
		return exitValidation
	}
	return exitSuccess
}

// ValidationOutput represents the validation result for a file.
type ValidationOutput struct {
	Valid    bool          `json:"valid"`
	RunID    string        `json:"run_id,omitempty"`
	Errors   []IssueOutput `json:"errors,omitempty"`
	Warnings []IssueOutput `json:"warnings,omitempty"`
}

// IssueOutput represents a validation issue.
type IssueOutput struct {
	Code     string `json:"code"`
	Context  string `json:"context,omitempty"`
	Class    string `json:"class,omitempty"`
	Property string `json:"property,omitempty"`
	Status   string `json:"status,omitempty"`
	Message  string `json:"message"`
}

func validateFile(path, runID string, logger log.Logger, opts ValidateOptions) *ValidationOutput {
	output := &ValidationOutput{Valid: true, RunID: runID}

	doc, err := schema.ParseDocumentFile(path)
	if err != nil {
		output.Valid = false
		output.Errors = append(output.Errors, IssueOutput{
			Code:    "PARSE",
			Message: err.Error(),
		})
		return output
	}

	validator := lint.NewValidator()
	validator.Strict = opts.Strict
	validator.Logger = logger
	validator.RunID = runID
	validator.Source = path

	result := validator.Validate(doc)
	output.Valid = result.Valid

	for _, e := range result.Errors {
		output.Errors = append(output.Errors, issueOutput(e))
	}
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, issueOutput(w))
	}

	return output
}

func issueOutput(issue lint.Issue) IssueOutput {
	out := IssueOutput{
		Code:     issue.Code,
		Context:  issue.Context,
		Class:    issue.Class,
		Property: issue.Property,
		Message:  issue.Message,
	}
	if !issue.Status.IsValid() {
		out.Status = issue.Status.String()
	}
	return out
}

func printValidationResult(w io.Writer, file string, result *ValidationOutput, verbose bool) {
	if result.Valid && len(result.Errors) == 0 && len(result.Warnings) == 0 {
		fmt.Fprintf(w, "%s: OK\n", file)
		return
	}

	if result.Valid && len(result.Warnings) > 0 {
		fmt.Fprintf(w, "%s: OK (with %d warnings)\n", file, len(result.Warnings))
	} else if !result.Valid {
		fmt.Fprintf(w, "%s: FAILED (%d errors, %d warnings)\n", file, len(result.Errors), len(result.Warnings))
	}

	if verbose || !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  ERROR %s: %s\n", e.Code, describeIssue(e))
		}
	}

	if verbose {
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  WARNING %s: %s\n", warn.Code, describeIssue(warn))
		}
	}
}

func describeIssue(issue IssueOutput) string {
	where := issue.Context
	if issue.Class != "" {
		where += "/" + issue.Class
	}
	if issue.Property != "" {
		where += "/" + issue.Property
	}
	if where != "" {
		return fmt.Sprintf("%s: %s", where, issue.Message)
	}
	return issue.Message
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.Strict, "strict", false, "Couple max/min acceptance to scale presence")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Show all warnings")
	fs.BoolVar(&opts.Verbose, "v", false, "Show all warnings (shorthand)")
	fs.StringVar(&opts.LogFile, "log", "", "Write a CBOR run log to this file")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: structmeta validate [options] <files...>

Options:
  --strict       Couple max/min acceptance to scale presence
  --json         Output results as JSON
  --log FILE     Write a CBOR run log to FILE
  -v, --verbose  Show all warnings

Examples:
  structmeta validate city.json
  structmeta validate --strict --json schemas/*.yaml`)
}
