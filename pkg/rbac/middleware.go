package rbac

import (
	"context"
	"errors"
	"net/http"

	"github.com/fleetkit/fleetkit/pkg/permissions"
)

// Decision describes a single authorization outcome, suitable for handing
// to an audit trail. The underlying check is deterministic and
// side-effect-free, so recording decisions cannot cause double effects.
type Decision struct {
	Role       Role
	Permission permissions.Permission
	Allowed    bool
	// Err carries the denial cause: ErrPermissionDenied, ErrRoleNotInContext,
	// or a malformed-permission error. Nil when allowed.
	Err error
}

// DecisionHook receives every decision the middleware makes.
type DecisionHook func(ctx context.Context, d Decision)

// ErrorHandler maps a denial to an HTTP response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

type middlewareConfig struct {
	errorHandler ErrorHandler
	hook         DecisionHook
}

// Option configures the permission middleware.
type Option func(*middlewareConfig)

// WithErrorHandler overrides how denials are written to the response.
// Nil handlers are ignored.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *middlewareConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecisionHook registers a hook that observes every decision, allowed
// or denied. Use it to wire an audit recorder around the check.
func WithDecisionHook(hook DecisionHook) Option {
	return func(c *middlewareConfig) {
		if hook != nil {
			c.hook = hook
		}
	}
}

// RequirePermission creates HTTP middleware that denies the request with
// 403 unless the role carried in the request context holds the required
// permission. The route is expected to sit behind authentication middleware
// that resolves the principal and calls SetRoleToContext; tenant-ownership
// checks of the specific target resource remain the handler's job.
func RequirePermission(auth Authorizer, required permissions.Permission, opts ...Option) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			role, ok := RoleFromContext(ctx)
			if !ok {
				err := errors.Join(ErrRoleNotInContext, ErrPermissionDenied)
				if cfg.hook != nil {
					cfg.hook(ctx, Decision{Permission: required, Allowed: false, Err: err})
				}
				cfg.errorHandler(w, r, err)
				return
			}

			err := auth.Can(role, required)
			if cfg.hook != nil {
				cfg.hook(ctx, Decision{
					Role:       role,
					Permission: required,
					Allowed:    err == nil,
					Err:        err,
				})
			}
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
