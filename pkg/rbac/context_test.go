package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetkit/fleetkit/pkg/rbac"
)

func TestRoleContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := rbac.SetRoleToContext(context.Background(), rbac.RoleInspector)
		role, ok := rbac.RoleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, rbac.RoleInspector, role)
	})

	t.Run("missing role", func(t *testing.T) {
		t.Parallel()

		role, ok := rbac.RoleFromContext(context.Background())
		assert.False(t, ok)
		assert.Empty(t, role)
	})

	t.Run("overwrite role", func(t *testing.T) {
		t.Parallel()

		ctx := rbac.SetRoleToContext(context.Background(), rbac.RoleDriver)
		ctx = rbac.SetRoleToContext(ctx, rbac.RoleOperatorAdmin)

		role, ok := rbac.RoleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, rbac.RoleOperatorAdmin, role)
	})
}
