package fleet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkit/fleetkit/modules/fleet"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

func newTestProvisioner(t *testing.T) *fleet.UserProvisioner {
	t.Helper()

	guard, err := rbac.NewProvisioningGuard(context.Background(), rbac.NewStaticPolicySource(rbac.DefaultPolicy()))
	require.NoError(t, err)
	return fleet.NewUserProvisioner(guard, nil)
}

func TestUserProvisioner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("allowed creation runs create", func(t *testing.T) {
		t.Parallel()

		p := newTestProvisioner(t)

		var created bool
		err := p.Provision(ctx, rbac.RoleOperatorAdmin, rbac.RoleDriver, func(context.Context) error {
			created = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("denied creation never runs create", func(t *testing.T) {
		t.Parallel()

		p := newTestProvisioner(t)

		var created bool
		err := p.Provision(ctx, rbac.RoleOperatorAdmin, rbac.RoleOperatorAdmin, func(context.Context) error {
			created = true
			return nil
		})
		assert.ErrorIs(t, err, fleet.ErrProvisioningDenied)
		assert.False(t, created)
	})

	t.Run("roles outside the hierarchy create nothing", func(t *testing.T) {
		t.Parallel()

		p := newTestProvisioner(t)

		err := p.Provision(ctx, rbac.RoleDriver, rbac.RolePassenger, func(context.Context) error {
			t.Fatal("create must not run")
			return nil
		})
		assert.ErrorIs(t, err, fleet.ErrProvisioningDenied)
	})

	t.Run("unknown target role", func(t *testing.T) {
		t.Parallel()

		p := newTestProvisioner(t)

		err := p.Provision(ctx, rbac.RoleSuperAdmin, rbac.Role("root"), func(context.Context) error {
			t.Fatal("create must not run")
			return nil
		})
		assert.ErrorIs(t, err, rbac.ErrUnknownRole)
	})

	t.Run("create errors pass through", func(t *testing.T) {
		t.Parallel()

		p := newTestProvisioner(t)

		wantErr := assert.AnError
		err := p.Provision(ctx, rbac.RoleSuperAdmin, rbac.RoleOperatorAdmin, func(context.Context) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
	})
}
