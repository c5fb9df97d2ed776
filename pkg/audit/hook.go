package audit

import (
	"context"
	"time"

	"github.com/fleetkit/fleetkit/pkg/rbac"
	"github.com/fleetkit/fleetkit/pkg/tenant"
)

// Hook adapts a Recorder into an rbac.DecisionHook for use with
// rbac.RequirePermission. The event is enriched with the tenant carried in
// the request context, when present.
func Hook(rec Recorder) rbac.DecisionHook {
	return func(ctx context.Context, d rbac.Decision) {
		e := Event{
			Role:       d.Role,
			Permission: d.Permission,
			Allowed:    d.Allowed,
			OccurredAt: time.Now(),
		}
		if d.Err != nil {
			e.Reason = d.Err.Error()
		}
		if id, ok := tenant.IDFromContext(ctx); ok {
			e.TenantID = id.String()
		}
		rec.Record(ctx, e)
	}
}
