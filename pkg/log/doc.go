// Package log provides structured run logging for structmeta.
//
// This package defines the Logger interface and Event type for
// capturing validation run events (parse problems, property view
// statuses, lint findings). It is separate from operational logging
// (slog) - run capture produces a complete machine-readable trace
// suitable for archiving and later analysis.
//
// # Basic Usage
//
// Callers configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	opts.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For archiving: write to binary file
//	opts.Logger, _ = log.NewFileLogger("runs/validate.slog")
//
//	// Both: use MultiLogger
//	opts.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with integer map keys. The Reader type
// streams events back, optionally filtered.
package log
