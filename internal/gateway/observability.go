package gateway

import (
	"io"
	"log/slog"
	"time"
)

// CallEvent records metadata about a single API call.
type CallEvent struct {
	Method    string
	Path      string
	RequestID string
	Status    int
	Attempts  int
	Latency   time.Duration
	Success   bool
	ErrorCode string
}

// Observer receives events about API calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w at the given level.
func NewLogObserver(w io.Writer, level slog.Level) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"method", event.Method,
		"path", event.Path,
		"request_id", event.RequestID,
		"status", event.Status,
		"attempts", event.Attempts,
		"latency_ms", event.Latency.Milliseconds(),
	}
	if !event.Success {
		o.logger.Warn("api_call", append(attrs, "error", event.ErrorCode)...)
		return
	}
	o.logger.Debug("api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
