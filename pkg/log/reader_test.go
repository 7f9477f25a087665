package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, path string, events []Event) {
	t.Helper()
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
}

func collect(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var out []Event
	for {
		e, err := reader.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, e)
	}
}

func TestReaderFilterByRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.slog")
	writeEvents(t, path, []Event{
		{Timestamp: time.Now(), RunID: "a", Stage: StageRun},
		{Timestamp: time.Now(), RunID: "b", Stage: StageRun},
		{Timestamp: time.Now(), RunID: "a", Stage: StageResolve},
	})

	got := collect(t, path, Filter{RunID: "a"})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.RunID != "a" {
			t.Errorf("unexpected run ID %q", e.RunID)
		}
	}
}

func TestReaderFilterByMinSeverity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.slog")
	writeEvents(t, path, []Event{
		{Timestamp: time.Now(), RunID: "r", Severity: SeverityInfo},
		{Timestamp: time.Now(), RunID: "r", Severity: SeverityWarning},
		{Timestamp: time.Now(), RunID: "r", Severity: SeverityError},
	})

	minSev := SeverityWarning
	got := collect(t, path, Filter{MinSeverity: &minSev})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.Severity < SeverityWarning {
			t.Errorf("severity %v slipped through the filter", e.Severity)
		}
	}
}

func TestReaderFilterByStageAndProperty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.slog")
	writeEvents(t, path, []Event{
		{Timestamp: time.Now(), RunID: "r", Stage: StageParse, Property: "height"},
		{Timestamp: time.Now(), RunID: "r", Stage: StageResolve, Property: "height"},
		{Timestamp: time.Now(), RunID: "r", Stage: StageResolve, Property: "area"},
	})

	stage := StageResolve
	got := collect(t, path, Filter{Stage: &stage, Property: "height"})
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].Property != "height" || got[0].Stage != StageResolve {
		t.Errorf("wrong event matched: %+v", got[0])
	}
}

func TestReaderFilterByTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.slog")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	writeEvents(t, path, []Event{
		{Timestamp: base, RunID: "r"},
		{Timestamp: base.Add(time.Hour), RunID: "r"},
		{Timestamp: base.Add(2 * time.Hour), RunID: "r"},
	})

	start := base.Add(30 * time.Minute)
	end := base.Add(90 * time.Minute)
	got := collect(t, path, Filter{TimeStart: &start, TimeEnd: &end})
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("wrong event matched: %v", got[0].Timestamp)
	}
}
