package rbac_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

func TestAuthorizer_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	auth := newTestAuthorizer(t)
	guard := newTestGuard(t)

	tripsRead := permissions.MustNew(permissions.SectionTrips, permissions.ActionRead)
	financeRead := permissions.MustNew(permissions.SectionFinance, permissions.ActionRead)
	vehiclesDelete := permissions.MustNew(permissions.SectionVehicles, permissions.ActionDelete)

	const numGoroutines = 50
	const numOperations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			for j := 0; j < numOperations; j++ {
				switch (id + j) % 6 {
				case 0:
					assert.NoError(t, auth.Can(rbac.RoleDriver, tripsRead))
				case 1:
					assert.ErrorIs(t, auth.Can(rbac.RolePassenger, financeRead), rbac.ErrPermissionDenied)
				case 2:
					assert.NoError(t, auth.Can(rbac.RoleOperatorAdmin, vehiclesDelete))
				case 3:
					ctx := rbac.SetRoleToContext(context.Background(), rbac.RoleGovObserver)
					assert.NoError(t, auth.CanFromContext(ctx, financeRead))
				case 4:
					assert.True(t, guard.CanProvision(rbac.RoleSuperAdmin, rbac.RoleGovObserver))
				case 5:
					assert.False(t, guard.CanProvision(rbac.RoleDriver, rbac.RoleDriver))
				}
			}
		}(i)
	}

	wg.Wait()
}

// Stress test with the race detector: mixed read paths over the shared
// immutable tables.
func TestRBAC_RaceConditions(t *testing.T) {
	t.Parallel()

	auth := newTestAuthorizer(t)
	guard := newTestGuard(t)

	tripsRead := permissions.MustNew(permissions.SectionTrips, permissions.ActionRead)
	tripsWrite := permissions.MustNew(permissions.SectionTrips, permissions.ActionWrite)

	const numGoroutines = 20
	const numOperations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			for j := 0; j < numOperations; j++ {
				switch (id + j) % 5 {
				case 0:
					_ = auth.CanAny(rbac.RoleDriver, tripsRead, tripsWrite)
				case 1:
					_ = auth.CanAll(rbac.RoleOperatorAdmin, tripsRead, tripsWrite)
				case 2:
					_, _ = auth.Grants(rbac.RoleInspector)
				case 3:
					_ = auth.GrantsForRoles(rbac.RolePassenger, rbac.RoleGovObserver)
				case 4:
					_ = guard.CanProvision(rbac.RoleOperatorAdmin, rbac.RoleInspector)
				}
			}
		}(i)
	}

	wg.Wait()
}
