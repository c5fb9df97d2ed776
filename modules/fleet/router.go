package fleet

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

// Mountable is anything that exposes an HTTP handler for a section of the
// workspace.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which section handlers to mount. Each handler is
// optional and is only mounted when provided; every mounted handler sits
// behind a method-aware permission guard for its section.
type RouterOptions struct {
	// Authorizer decides every request. Required.
	Authorizer rbac.Authorizer
	// GuardOptions are passed through to every permission guard, typically
	// an audit decision hook or a custom error handler.
	GuardOptions []rbac.Option

	Overview     Mountable
	Vehicles     Mountable
	Drivers      Mountable
	Routes       Mountable
	Schedules    Mountable
	Trips        Mountable
	Branches     Mountable
	Analytics    Mountable
	Finance      Mountable
	Fuel         Mountable
	Fleet        Mountable
	Settings     Mountable
	Organization Mountable
	Users        Mountable
}

// Router creates the workspace router. Every section route requires the
// role in the request context to hold the permission matching the section
// and the HTTP method, so the routing table mirrors the permission catalog.
//
// Example:
//
//	auth, _ := rbac.NewAuthorizer(ctx, rbac.NewStaticPolicySource(rbac.DefaultPolicy()))
//
//	r := chi.NewRouter()
//	r.Mount("/workspace", fleet.Router(fleet.RouterOptions{
//	    Authorizer:   auth,
//	    GuardOptions: []rbac.Option{rbac.WithDecisionHook(audit.Hook(recorder))},
//	    Vehicles:     vehiclesSvc,
//	    Trips:        tripsSvc,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	mount := func(path string, section permissions.Section, h Mountable) {
		if h == nil {
			return
		}
		r.Route(path, func(sr chi.Router) {
			sr.Use(SectionGuard(opts.Authorizer, section, opts.GuardOptions...))
			sr.Mount("/", h.Handle())
		})
	}

	mount("/overview", permissions.SectionOverview, opts.Overview)
	mount("/vehicles", permissions.SectionVehicles, opts.Vehicles)
	mount("/drivers", permissions.SectionDrivers, opts.Drivers)
	mount("/routes", permissions.SectionRoutes, opts.Routes)
	mount("/schedules", permissions.SectionSchedules, opts.Schedules)
	mount("/trips", permissions.SectionTrips, opts.Trips)
	mount("/branches", permissions.SectionBranches, opts.Branches)
	mount("/analytics", permissions.SectionAnalytics, opts.Analytics)
	mount("/finance", permissions.SectionFinance, opts.Finance)
	mount("/fuel", permissions.SectionFuel, opts.Fuel)
	mount("/fleet", permissions.SectionFleet, opts.Fleet)
	mount("/settings", permissions.SectionSettings, opts.Settings)
	mount("/organization", permissions.SectionOrganization, opts.Organization)
	mount("/users", permissions.SectionUsers, opts.Users)

	return r
}
