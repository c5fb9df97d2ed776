// Package tenant resolves and carries the transit operator (tenant) a
// request runs under. Every resource in the platform is scoped to exactly
// one operator; the access-control core in package rbac treats that scoping
// as a precondition, so this package is where it gets established.
//
// The middleware resolves an operator identifier from the request (header,
// subdomain, or a custom resolver), loads the operator through a Provider,
// optionally caches it (in process or in Redis), and stores it in the
// request context. Handlers then read it back with FromContext and remain
// responsible for verifying that the specific resources they touch belong
// to that operator.
//
// Basic usage:
//
//	provider := tenant.NewPGProvider(pool)
//	resolver := tenant.NewCompositeResolver(
//	    tenant.NewHeaderResolver("X-Operator-ID"),
//	    tenant.NewSubdomainResolver("fleet.example.com"),
//	)
//
//	r.Use(tenant.Middleware(resolver, provider,
//	    tenant.WithCache(tenant.NewRedisCache(redisClient, "")),
//	    tenant.WithSkipPaths("/health"),
//	))
//	r.Use(tenant.RequireTenant(nil))
package tenant
