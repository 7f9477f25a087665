package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes run events to an slog.Logger.
// Useful for development when you want to see run events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Severity maps to the
// slog level: info, warn, or error.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("stage", event.Stage.String()),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Class != "" {
		attrs = append(attrs, slog.String("class", event.Class))
	}
	if event.Property != "" {
		attrs = append(attrs, slog.String("property", event.Property))
	}
	if event.Context != "" {
		attrs = append(attrs, slog.String("context", event.Context))
	}
	if event.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", int(event.StatusCode)))
	}

	level := slog.LevelInfo
	switch event.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	msg := event.Message
	if msg == "" {
		msg = "run event"
	}
	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
