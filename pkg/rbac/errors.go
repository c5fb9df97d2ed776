package rbac

import "errors"

// Domain errors for RBAC operations.
var (
	// ErrUnknownRole is returned when a role is outside the closed enumeration.
	ErrUnknownRole = errors.New("rbac.unknown_role")

	// ErrPermissionDenied is returned when the required permission is not granted.
	// Denial is a routine outcome, not a defect.
	ErrPermissionDenied = errors.New("rbac.permission_denied")

	// ErrRoleNotInContext is returned when no role is found in the context.
	ErrRoleNotInContext = errors.New("rbac.role_not_in_context")

	// ErrMissingRoleGrant is returned at construction when a declared role
	// has no grant table entry. Startup must abort: a silently missing entry
	// is indistinguishable from an intentional empty grant set.
	ErrMissingRoleGrant = errors.New("rbac.missing_role_grant")
)
