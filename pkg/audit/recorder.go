package audit

import (
	"context"
	"log/slog"
	"time"
)

// Recorder persists authorization decisions to an audit trail.
type Recorder interface {
	// Record stores a single decision. Implementations must not block the
	// request path longer than a log write.
	Record(ctx context.Context, e Event)
}

// RecorderFunc is an adapter to use ordinary functions as Recorder.
type RecorderFunc func(ctx context.Context, e Event)

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, e Event) {
	f(ctx, e)
}

// slogRecorder writes decisions through a structured logger: denials at
// warn so they surface in operator dashboards, allowed decisions at debug.
type slogRecorder struct {
	log *slog.Logger
}

// NewSlogRecorder creates a Recorder backed by the given structured logger.
// A nil logger falls back to slog.Default().
func NewSlogRecorder(log *slog.Logger) Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &slogRecorder{log: log}
}

// Record writes the decision as a structured log record.
func (r *slogRecorder) Record(ctx context.Context, e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	attrs := []any{
		slog.String("permission", e.Permission.String()),
		slog.Bool("allowed", e.Allowed),
	}
	if e.TenantID != "" {
		attrs = append(attrs, slog.String("tenant_id", e.TenantID))
	}
	if e.Role != "" {
		attrs = append(attrs, slog.String("role", string(e.Role)))
	}
	if e.Reason != "" {
		attrs = append(attrs, slog.String("reason", e.Reason))
	}

	if e.Allowed {
		r.log.DebugContext(ctx, "authorization allowed", attrs...)
		return
	}
	r.log.WarnContext(ctx, "authorization denied", attrs...)
}

// noopRecorder discards every event.
type noopRecorder struct{}

// NewNoopRecorder creates a Recorder that discards everything. Useful for
// tests and for deployments that audit at a different layer.
func NewNoopRecorder() Recorder {
	return noopRecorder{}
}

func (noopRecorder) Record(context.Context, Event) {}
