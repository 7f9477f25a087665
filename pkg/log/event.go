package log

import (
	"time"
)

// Event represents a single validation run event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies the validation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Stage where the event was produced.
	Stage Stage `cbor:"3,keyasint"`

	// Severity classifies the finding.
	Severity Severity `cbor:"4,keyasint"`

	// Source is the document path, or "-" for standard input.
	Source string `cbor:"5,keyasint,omitempty"`

	// Class is the class ID the event refers to, if any.
	Class string `cbor:"6,keyasint,omitempty"`

	// Property is the property ID the event refers to, if any.
	Property string `cbor:"7,keyasint,omitempty"`

	// Context locates the declaration, e.g. "propertyTables[2]".
	Context string `cbor:"8,keyasint,omitempty"`

	// StatusCode is the property view status, when the event carries
	// a construction outcome.
	StatusCode int32 `cbor:"9,keyasint,omitempty"`

	// Message is the human-readable description.
	Message string `cbor:"10,keyasint,omitempty"`
}

// Stage indicates which phase of a run produced the event.
type Stage uint8

const (
	// StageParse covers document decoding and structural checks.
	StageParse Stage = 0
	// StageResolve covers property view construction.
	StageResolve Stage = 1
	// StageRun covers run lifecycle events (start, finish, totals).
	StageRun Stage = 2
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageParse:
		return "PARSE"
	case StageResolve:
		return "RESOLVE"
	case StageRun:
		return "RUN"
	default:
		return "UNKNOWN"
	}
}

// Severity classifies the weight of a finding.
type Severity uint8

const (
	// SeverityInfo marks informational events.
	SeverityInfo Severity = 0
	// SeverityWarning marks findings that do not fail the run.
	SeverityWarning Severity = 1
	// SeverityError marks findings that fail the run.
	SeverityError Severity = 2
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
