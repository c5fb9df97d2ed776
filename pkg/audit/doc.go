// Package audit records authorization decisions to an external trail.
//
// The access-control core in package rbac deliberately emits no logs: it is
// a pure decision function. This package is the caller-side collaborator
// that wraps it, turning each allow/deny into a structured event carrying
// the principal's role, the requested permission, the tenant, and the
// outcome. Because the underlying decision is deterministic and
// side-effect-free, recording can wrap it without risk of double effects.
//
// Basic usage:
//
//	rec := audit.NewSlogRecorder(log)
//
//	r.With(rbac.RequirePermission(auth, perm,
//	    rbac.WithDecisionHook(audit.Hook(rec)),
//	)).Get("/vehicles", listVehicles)
package audit
