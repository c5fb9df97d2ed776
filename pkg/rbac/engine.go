package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetkit/fleetkit/pkg/permissions"
)

// IsAuthorized decides whether a grant set permits the required permission.
// Decision rules, in priority order:
//
//  1. a wildcard grant permits everything;
//  2. a verbatim grant permits the exact permission;
//  3. a "<section>.manage" grant permits read, write and delete within the
//     same section only.
//
// The function is pure and total: denial is a normal false return, never an
// error. The only failure mode is a required value outside the catalog's
// closed shape (permissions.ErrMalformedPermission), which cannot happen
// with values built through the permissions package and exists to guard
// against hand-built strings at the boundary.
func IsAuthorized(grants GrantSet, required permissions.Permission) (bool, error) {
	if required.IsWildcard() {
		return grants.HasWildcard(), nil
	}

	section, action, err := required.Split()
	if err != nil {
		return false, err
	}

	switch {
	case grants.HasWildcard(), grants.Has(required):
		return true, nil
	case action != permissions.ActionManage:
		return grants.Has(permissions.MustNew(section, permissions.ActionManage)), nil
	default:
		return false, nil
	}
}

// Authorizer resolves permission checks against the immutable grant table.
// All methods are safe for concurrent use: the table is built once and
// never mutated. If a deployment needs policy hot-reload, build a new
// Authorizer and swap the reference atomically; never mutate in place.
type Authorizer interface {
	// Can checks if a role holds the required permission.
	// Returns nil when allowed, ErrPermissionDenied when not.
	Can(role Role, required permissions.Permission) error

	// CanAny checks if a role holds any of the required permissions.
	CanAny(role Role, required ...permissions.Permission) error

	// CanAll checks if a role holds all of the required permissions.
	CanAll(role Role, required ...permissions.Permission) error

	// CanFromContext checks the role carried in the context.
	CanFromContext(ctx context.Context, required permissions.Permission) error

	// Grants returns a copy of the role's grant set.
	Grants(role Role) (GrantSet, error)

	// GrantsForRoles returns the union grant set for a multi-role principal.
	// Roles outside the enumeration contribute nothing.
	GrantsForRoles(roles ...Role) GrantSet

	// Roles returns the closed role enumeration.
	Roles() []Role
}

type authorizer struct {
	// grants is treated as immutable after construction; concurrent reads
	// need no locking.
	grants map[Role]GrantSet
}

// NewAuthorizer builds an Authorizer from the provided policy source.
// Construction fails fast on configuration defects: a grant entry for an
// unknown role, a malformed permission in any grant set, or a declared role
// with no grant table entry at all (ErrMissingRoleGrant). Never serve
// traffic with an incomplete policy.
func NewAuthorizer(ctx context.Context, source PolicySource) (Authorizer, error) {
	policy, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	grants := make(map[Role]GrantSet, len(allRoles))
	for role, set := range policy.Grants {
		if !ValidRole(role) {
			return nil, errors.Join(ErrUnknownRole, fmt.Errorf("grant table entry for unknown role %q", role))
		}
		for p := range set {
			if p.IsWildcard() {
				continue
			}
			if _, _, err := p.Split(); err != nil {
				return nil, errors.Join(err, fmt.Errorf("role %q holds malformed permission %q", role, p))
			}
		}
		grants[role] = NewGrantSet(set.Permissions()...)
	}

	// Structural completeness: every declared role needs an entry, even an
	// empty one. An absent entry looks identical to intentional
	// "no permissions" and must surface at startup instead.
	for _, role := range allRoles {
		if _, ok := grants[role]; !ok {
			return nil, errors.Join(ErrMissingRoleGrant, fmt.Errorf("role %q has no grant table entry", role))
		}
	}

	return &authorizer{grants: grants}, nil
}

// Can checks if a role holds the required permission.
func (a *authorizer) Can(role Role, required permissions.Permission) error {
	set, ok := a.grants[role]
	if !ok {
		return ErrUnknownRole
	}

	allowed, err := IsAuthorized(set, required)
	if err != nil {
		// Malformed input is a caller-side bug; deny, but keep the cause visible.
		return errors.Join(ErrPermissionDenied, err)
	}
	if !allowed {
		return ErrPermissionDenied
	}

	return nil
}

// CanAny checks if a role holds any of the required permissions.
func (a *authorizer) CanAny(role Role, required ...permissions.Permission) error {
	if len(required) == 0 {
		return nil
	}

	set, ok := a.grants[role]
	if !ok {
		return ErrUnknownRole
	}

	var malformed error
	for _, p := range required {
		allowed, err := IsAuthorized(set, p)
		if err != nil {
			malformed = err
			continue
		}
		if allowed {
			return nil
		}
	}

	if malformed != nil {
		return errors.Join(ErrPermissionDenied, malformed)
	}
	return ErrPermissionDenied
}

// CanAll checks if a role holds all of the required permissions.
func (a *authorizer) CanAll(role Role, required ...permissions.Permission) error {
	if len(required) == 0 {
		return nil
	}

	set, ok := a.grants[role]
	if !ok {
		return ErrUnknownRole
	}

	for _, p := range required {
		allowed, err := IsAuthorized(set, p)
		if err != nil {
			return errors.Join(ErrPermissionDenied, err)
		}
		if !allowed {
			return ErrPermissionDenied
		}
	}

	return nil
}

// CanFromContext checks if the role in context holds the required permission.
func (a *authorizer) CanFromContext(ctx context.Context, required permissions.Permission) error {
	role, ok := RoleFromContext(ctx)
	if !ok {
		return errors.Join(ErrRoleNotInContext, ErrPermissionDenied)
	}

	return a.Can(role, required)
}

// Grants returns a copy of the role's grant set.
func (a *authorizer) Grants(role Role) (GrantSet, error) {
	set, ok := a.grants[role]
	if !ok {
		return nil, ErrUnknownRole
	}
	return set.Clone(), nil
}

// GrantsForRoles returns the union grant set for a multi-role principal.
func (a *authorizer) GrantsForRoles(roles ...Role) GrantSet {
	union := make(GrantSet)
	for _, role := range roles {
		set, ok := a.grants[role]
		if !ok {
			continue
		}
		if set.HasWildcard() {
			return NewGrantSet(permissions.Wildcard)
		}
		for p := range set {
			union[p] = struct{}{}
		}
	}
	return union
}

// Roles returns the closed role enumeration.
func (a *authorizer) Roles() []Role {
	return Roles()
}
