package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogAdapterLevels(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "level=INFO"},
		{SeverityWarning, "level=WARN"},
		{SeverityError, "level=ERROR"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

		adapter.Log(Event{
			Timestamp: time.Now(),
			RunID:     "r",
			Severity:  tc.severity,
			Message:   "finding",
		})

		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("severity %v: output %q does not contain %q", tc.severity, buf.String(), tc.want)
		}
	}
}

func TestSlogAdapterAttributes(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	adapter.Log(Event{
		Timestamp:  time.Now(),
		RunID:      "run-7",
		Stage:      StageResolve,
		Severity:   SeverityError,
		Class:      "building",
		Property:   "height",
		StatusCode: 6,
		Message:    "invalid offset",
	})

	out := buf.String()
	for _, want := range []string{
		"run_id=run-7",
		"stage=RESOLVE",
		"class=building",
		"property=height",
		"status=6",
		"invalid offset",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
