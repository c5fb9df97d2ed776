package rbac_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	auth := newTestAuthorizer(t)
	vehiclesRead := permissions.MustNew(permissions.SectionVehicles, permissions.ActionRead)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	request := func(role rbac.Role, withRole bool) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
		if withRole {
			r = r.WithContext(rbac.SetRoleToContext(r.Context(), role))
		}
		return r
	}

	t.Run("allowed request passes through", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rbac.RequirePermission(auth, vehiclesRead)(okHandler).ServeHTTP(rec, request(rbac.RoleInspector, true))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied request gets 403", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rbac.RequirePermission(auth, vehiclesRead)(okHandler).ServeHTTP(rec, request(rbac.RolePassenger, true))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role gets 403", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rbac.RequirePermission(auth, vehiclesRead)(okHandler).ServeHTTP(rec, request("", false))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		var gotErr error
		handler := rbac.RequirePermission(auth, vehiclesRead,
			rbac.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				gotErr = err
				w.WriteHeader(http.StatusNotFound)
			}),
		)(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request(rbac.RolePassenger, true))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.ErrorIs(t, gotErr, rbac.ErrPermissionDenied)
	})

	t.Run("decision hook observes both outcomes", func(t *testing.T) {
		t.Parallel()

		var (
			mu        sync.Mutex
			decisions []rbac.Decision
		)
		handler := rbac.RequirePermission(auth, vehiclesRead,
			rbac.WithDecisionHook(func(_ context.Context, d rbac.Decision) {
				mu.Lock()
				defer mu.Unlock()
				decisions = append(decisions, d)
			}),
		)(okHandler)

		handler.ServeHTTP(httptest.NewRecorder(), request(rbac.RoleInspector, true))
		handler.ServeHTTP(httptest.NewRecorder(), request(rbac.RolePassenger, true))

		require.Len(t, decisions, 2)
		assert.True(t, decisions[0].Allowed)
		assert.Equal(t, rbac.RoleInspector, decisions[0].Role)
		assert.NoError(t, decisions[0].Err)

		assert.False(t, decisions[1].Allowed)
		assert.Equal(t, rbac.RolePassenger, decisions[1].Role)
		assert.ErrorIs(t, decisions[1].Err, rbac.ErrPermissionDenied)
		assert.Equal(t, vehiclesRead, decisions[1].Permission)
	})
}
