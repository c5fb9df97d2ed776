package fleet

import (
	"net/http"

	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

// SectionGuard creates middleware that requires the section permission
// matching the HTTP method: GET/HEAD/OPTIONS need read, DELETE needs
// delete, everything else needs write. A role holding the section's manage
// permission passes all three.
func SectionGuard(auth rbac.Authorizer, section permissions.Section, opts ...rbac.Option) func(http.Handler) http.Handler {
	guards := map[permissions.Action]func(http.Handler) http.Handler{
		permissions.ActionRead:   rbac.RequirePermission(auth, permissions.MustNew(section, permissions.ActionRead), opts...),
		permissions.ActionWrite:  rbac.RequirePermission(auth, permissions.MustNew(section, permissions.ActionWrite), opts...),
		permissions.ActionDelete: rbac.RequirePermission(auth, permissions.MustNew(section, permissions.ActionDelete), opts...),
	}

	return func(next http.Handler) http.Handler {
		byAction := make(map[permissions.Action]http.Handler, len(guards))
		for action, guard := range guards {
			byAction[action] = guard(next)
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			byAction[actionForMethod(r.Method)].ServeHTTP(w, r)
		})
	}
}

func actionForMethod(method string) permissions.Action {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return permissions.ActionRead
	case http.MethodDelete:
		return permissions.ActionDelete
	default:
		return permissions.ActionWrite
	}
}
