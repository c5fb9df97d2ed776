package tenant

import (
	"net/http"
	"strings"
	"time"
)

// Middleware creates HTTP middleware that resolves the operator for the
// incoming request and adds it to the request context. Requests without an
// identifier pass through untouched; use RequireTenant behind this
// middleware for routes that must run inside an operator.
func Middleware(resolver Resolver, provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cache:         NewInMemoryCache(),
		cacheTTL:      5 * time.Minute,
		errorHandler:  defaultErrorHandler,
		requireActive: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			identifier, err := resolver.Resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
			if identifier == "" {
				next.ServeHTTP(w, r)
				return
			}

			if cached, ok := cfg.cache.Get(r.Context(), identifier); ok {
				if cfg.requireActive && !cached.Active {
					cfg.errorHandler(w, r, ErrInactiveTenant)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), cached)))
				return
			}

			t, err := provider.GetByIdentifier(r.Context(), identifier)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			if cfg.requireActive && !t.Active {
				cfg.errorHandler(w, r, ErrInactiveTenant)
				return
			}

			cfg.cache.Set(r.Context(), identifier, t, cfg.cacheTTL)
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}

// RequireTenant creates middleware that rejects requests without an
// operator in context. Mount it on routes that must be tenant-scoped.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, ok := FromContext(r.Context())
			if !ok || t == nil {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
