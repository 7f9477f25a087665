package log

import (
	"testing"
	"time"
)

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		RunID:      "run-42",
		Stage:      StageResolve,
		Severity:   SeverityError,
		Source:     "asset.json",
		Class:      "building",
		Property:   "height",
		Context:    "propertyTables[0]",
		StatusCode: 7,
		Message:    "invalid scale for shape scalar[INT32]",
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
	}
	if decoded.RunID != event.RunID {
		t.Errorf("run ID = %q, want %q", decoded.RunID, event.RunID)
	}
	if decoded.Stage != event.Stage {
		t.Errorf("stage = %v, want %v", decoded.Stage, event.Stage)
	}
	if decoded.Severity != event.Severity {
		t.Errorf("severity = %v, want %v", decoded.Severity, event.Severity)
	}
	if decoded.Class != event.Class || decoded.Property != event.Property {
		t.Errorf("class/property = %q/%q, want %q/%q",
			decoded.Class, decoded.Property, event.Class, event.Property)
	}
	if decoded.StatusCode != event.StatusCode {
		t.Errorf("status code = %d, want %d", decoded.StatusCode, event.StatusCode)
	}
	if decoded.Message != event.Message {
		t.Errorf("message = %q, want %q", decoded.Message, event.Message)
	}
}

func TestEventOmitsEmptyFields(t *testing.T) {
	minimal := Event{Timestamp: time.Now(), RunID: "r", Stage: StageRun}
	full := Event{
		Timestamp: time.Now(), RunID: "r", Stage: StageRun,
		Source: "s", Class: "c", Property: "p", Context: "x", Message: "m",
	}

	minData, err := EncodeEvent(minimal)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	fullData, err := EncodeEvent(full)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	if len(minData) >= len(fullData) {
		t.Errorf("minimal event (%d bytes) should be smaller than full event (%d bytes)",
			len(minData), len(fullData))
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageParse, "PARSE"},
		{StageResolve, "RESOLVE"},
		{StageRun, "RUN"},
		{Stage(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.stage.String(); got != tc.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tc.stage, got, tc.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.severity.String(); got != tc.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tc.severity, got, tc.want)
		}
	}
}
