// Package permissions defines the closed catalog of resource sections and
// actions for the fleet platform, and the canonical permission identifiers
// built from them.
//
// A permission is the value "<section>.<action>" (e.g. "vehicles.read") or
// the wildcard "*" granting universal access. Sections and actions are
// closed enumerations: a permission over anything outside the catalog
// cannot be constructed through this package.
//
// The catalog carries no policy. Which role holds which permission is the
// concern of package rbac; this package only names what can be granted and
// renders stable descriptions for audit trails and UI.
//
// Basic usage:
//
//	// Build a permission for the operation a handler is about to perform.
//	perm, err := permissions.New(permissions.SectionVehicles, permissions.ActionRead)
//	if err != nil {
//	    // Section or action outside the catalog.
//	}
//
//	// Static permission values fail fast at init.
//	var manageFinance = permissions.MustNew(permissions.SectionFinance, permissions.ActionManage)
//
//	// Validate values arriving as plain strings at the boundary.
//	perm, err = permissions.Parse("trips.write")
//	if err != nil {
//	    // ErrMalformedPermission: treat as denied and log loudly.
//	}
package permissions
