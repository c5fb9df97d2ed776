package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkit/fleetkit/pkg/audit"
	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
	"github.com/fleetkit/fleetkit/pkg/tenant"
)

func newCaptureLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogRecorder(t *testing.T) {
	t.Parallel()

	financeRead := permissions.MustNew(permissions.SectionFinance, permissions.ActionRead)

	t.Run("denial logged at warn", func(t *testing.T) {
		t.Parallel()

		log, buf := newCaptureLogger(slog.LevelDebug)
		rec := audit.NewSlogRecorder(log)

		rec.Record(context.Background(), audit.Event{
			TenantID:   "op-1",
			Role:       rbac.RolePassenger,
			Permission: financeRead,
			Allowed:    false,
			Reason:     rbac.ErrPermissionDenied.Error(),
			OccurredAt: time.Now(),
		})

		got := decodeRecord(t, buf)
		assert.Equal(t, "WARN", got["level"])
		assert.Equal(t, "authorization denied", got["msg"])
		assert.Equal(t, "finance.read", got["permission"])
		assert.Equal(t, false, got["allowed"])
		assert.Equal(t, "op-1", got["tenant_id"])
		assert.Equal(t, "passenger", got["role"])
		assert.Equal(t, rbac.ErrPermissionDenied.Error(), got["reason"])
	})

	t.Run("allowed logged at debug", func(t *testing.T) {
		t.Parallel()

		log, buf := newCaptureLogger(slog.LevelDebug)
		rec := audit.NewSlogRecorder(log)

		rec.Record(context.Background(), audit.Event{
			Role:       rbac.RoleDriver,
			Permission: permissions.MustNew(permissions.SectionTrips, permissions.ActionRead),
			Allowed:    true,
		})

		got := decodeRecord(t, buf)
		assert.Equal(t, "DEBUG", got["level"])
		assert.Equal(t, "authorization allowed", got["msg"])
		assert.Equal(t, true, got["allowed"])
	})

	t.Run("allowed suppressed at info level", func(t *testing.T) {
		t.Parallel()

		log, buf := newCaptureLogger(slog.LevelInfo)
		rec := audit.NewSlogRecorder(log)

		rec.Record(context.Background(), audit.Event{
			Permission: financeRead,
			Allowed:    true,
		})

		assert.Zero(t, buf.Len())
	})
}

func TestHook(t *testing.T) {
	t.Parallel()

	financeRead := permissions.MustNew(permissions.SectionFinance, permissions.ActionRead)

	t.Run("enriches with tenant from context", func(t *testing.T) {
		t.Parallel()

		var got audit.Event
		hook := audit.Hook(audit.RecorderFunc(func(_ context.Context, e audit.Event) {
			got = e
		}))

		id := uuid.New()
		ctx := tenant.WithTenant(context.Background(), &tenant.Tenant{ID: id, Slug: "metrobus", Active: true})

		hook(ctx, rbac.Decision{
			Role:       rbac.RolePassenger,
			Permission: financeRead,
			Allowed:    false,
			Err:        rbac.ErrPermissionDenied,
		})

		assert.Equal(t, id.String(), got.TenantID)
		assert.Equal(t, rbac.RolePassenger, got.Role)
		assert.Equal(t, financeRead, got.Permission)
		assert.False(t, got.Allowed)
		assert.Equal(t, rbac.ErrPermissionDenied.Error(), got.Reason)
		assert.False(t, got.OccurredAt.IsZero())
	})

	t.Run("no tenant in context", func(t *testing.T) {
		t.Parallel()

		var got audit.Event
		hook := audit.Hook(audit.RecorderFunc(func(_ context.Context, e audit.Event) {
			got = e
		}))

		hook(context.Background(), rbac.Decision{
			Role:       rbac.RoleDriver,
			Permission: financeRead,
			Allowed:    true,
		})

		assert.Empty(t, got.TenantID)
		assert.Empty(t, got.Reason)
		assert.True(t, got.Allowed)
	})
}
