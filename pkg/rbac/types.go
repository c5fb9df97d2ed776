package rbac

import (
	"slices"
	"sort"

	"github.com/fleetkit/fleetkit/pkg/permissions"
)

// Role is an identity classification. The set is closed and defined once;
// role assignments themselves live outside this package.
type Role string

const (
	// RoleSuperAdmin is the platform super-administrator.
	RoleSuperAdmin Role = "super_admin"
	// RoleOperatorAdmin administers a single transit operator (tenant).
	RoleOperatorAdmin Role = "operator_admin"
	RoleDriver        Role = "driver"
	RoleInspector     Role = "inspector"
	RolePassenger     Role = "passenger"
	// RoleGovObserver is a read-only government observer account.
	RoleGovObserver Role = "gov_observer"
)

var allRoles = []Role{
	RoleSuperAdmin,
	RoleOperatorAdmin,
	RoleDriver,
	RoleInspector,
	RolePassenger,
	RoleGovObserver,
}

// Roles returns every role in the enumeration.
// The returned slice is a copy and safe to modify.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ValidRole reports whether r belongs to the closed role enumeration.
func ValidRole(r Role) bool {
	return slices.Contains(allRoles, r)
}

// GrantSet is the set of permissions held by a role. Membership is the only
// thing that matters: ordering is irrelevant and duplicates cannot exist.
type GrantSet map[permissions.Permission]struct{}

// NewGrantSet builds a normalized grant set from the given permissions.
// Duplicates collapse, and a wildcard absorbs every other entry.
func NewGrantSet(perms ...permissions.Permission) GrantSet {
	g := make(GrantSet, len(perms))
	for _, p := range perms {
		if p.IsWildcard() {
			return GrantSet{permissions.Wildcard: {}}
		}
		g[p] = struct{}{}
	}
	return g
}

// Has reports whether the set contains the permission verbatim.
func (g GrantSet) Has(p permissions.Permission) bool {
	_, ok := g[p]
	return ok
}

// HasWildcard reports whether the set contains the universal wildcard.
func (g GrantSet) HasWildcard() bool {
	return g.Has(permissions.Wildcard)
}

// Permissions returns the set's members sorted for stable output.
func (g GrantSet) Permissions() []permissions.Permission {
	out := make([]permissions.Permission, 0, len(g))
	for p := range g {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the set.
func (g GrantSet) Clone() GrantSet {
	out := make(GrantSet, len(g))
	for p := range g {
		out[p] = struct{}{}
	}
	return out
}
