package api

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// CallEvent records metadata about a single API request.
type CallEvent struct {
	Op        string
	Method    string
	Path      string
	Status    int
	Latency   time.Duration
	RequestID string
	ErrorCode string
}

// Observer receives events about API calls for logging and metrics.
type Observer interface {
	OnCallComplete(ctx context.Context, event CallEvent)
}

// LogObserver writes call events as structured log lines.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(ctx context.Context, e CallEvent) {
	attrs := []any{
		"op", e.Op,
		"method", e.Method,
		"path", e.Path,
		"status", e.Status,
		"latency_ms", e.Latency.Milliseconds(),
		"request_id", e.RequestID,
	}
	if e.ErrorCode != "" {
		attrs = append(attrs, "error", e.ErrorCode)
		o.logger.WarnContext(ctx, "api_call", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(context.Context, CallEvent) {}
