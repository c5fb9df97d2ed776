// Package rbac is the access-control core for the fleet platform: given a
// principal's role and a required permission, it decides allow or deny.
//
// The package holds no mutable state. The grant table (role → permission
// set) and the hierarchy table (role → roles it may provision) are loaded
// once from a PolicySource at process start, validated, and never mutated
// afterwards, so any number of request handlers can check permissions
// concurrently without locking. Denial is a routine outcome: the engine
// returns it as a value, never as a panic, and emits no logs itself —
// callers record decisions through their own audit trail (see the
// WithDecisionHook middleware option and package audit).
//
// Decision semantics:
//
//   - a wildcard grant ("*") permits every permission;
//   - a verbatim grant permits exactly that permission;
//   - "<section>.manage" subsumes read, write and delete within its own
//     section, and nothing outside it.
//
// Tenant scoping is a precondition: every check is implicitly "within the
// caller's own tenant", and verifying that the target resource belongs to
// that tenant is the caller's responsibility (see package tenant).
//
// Basic usage:
//
//	source := rbac.NewStaticPolicySource(rbac.DefaultPolicy())
//
//	auth, err := rbac.NewAuthorizer(ctx, source)
//	if err != nil {
//	    // Configuration defect: abort startup.
//	}
//
//	perm := permissions.MustNew(permissions.SectionVehicles, permissions.ActionRead)
//	if err := auth.Can(rbac.RoleDriver, perm); err != nil {
//	    // Map to 403.
//	}
//
//	// Account creation paths consult the provisioning guard to stop
//	// privilege escalation before any side effect happens.
//	guard, err := rbac.NewProvisioningGuard(ctx, source)
//	if err != nil {
//	    // Abort startup.
//	}
//	if !guard.CanProvision(rbac.RoleOperatorAdmin, rbac.RoleDriver) {
//	    // Abort creation.
//	}
package rbac
