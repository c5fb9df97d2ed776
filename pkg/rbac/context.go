package rbac

import "context"

// roleCtxKey is the context key for storing the principal's role.
type roleCtxKey struct{}

// SetRoleToContext stores the principal's resolved role in the context.
// Resolution itself (token verification, session lookup) is the caller's
// concern; this package only carries the result.
func SetRoleToContext(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleCtxKey{}, role)
}

// RoleFromContext retrieves the principal's role from the context.
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleCtxKey{}).(Role)
	return role, ok
}
