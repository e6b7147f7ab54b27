// Package observability provides the event sink that reducer composition and
// dispatch report through. Level values align with OpenTelemetry
// SeverityNumbers so events translate to OTel log records and span events
// without remapping.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level represents event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8), maps to slog.LevelDebug
	LevelInfo    Level = 9  // OTel INFO (9-12), maps to slog.LevelInfo
	LevelWarning Level = 13 // OTel WARN (13-16), maps to slog.LevelWarn
	LevelError   Level = 17 // OTel ERROR (17-20), maps to slog.LevelError
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps this level to the corresponding slog.Level for log emission.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event. Emitting packages define their own
// constants using this type (e.g., "reduction.dispatch.start").
type EventType string

// Event is a diagnostic event. Fields map to OTel LogRecord fields:
// Type→EventName, Level→SeverityNumber, Timestamp→Timestamp,
// Source→InstrumentationScope, Data→Attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events for logging, tracing, or metrics. Implementations
// must not panic and must not block; dispatch calls them inline.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// Silent reports whether events sent to observer are discarded without
// effect, letting emitters skip building them. A MultiObserver is silent when
// every observer it fans out to is silent.
func Silent(observer Observer) bool {
	switch o := observer.(type) {
	case nil, NoOpObserver, *NoOpObserver:
		return true
	case *MultiObserver:
		for _, inner := range o.observers {
			if !Silent(inner) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
