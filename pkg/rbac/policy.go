package rbac

import "github.com/fleetkit/fleetkit/pkg/permissions"

// DefaultPolicy returns the shipped grant and hierarchy tables. The grant
// table is kept flat and explicit (one line per section × action per role)
// so it stays reviewable for audits.
func DefaultPolicy() Policy {
	read := func(s permissions.Section) permissions.Permission {
		return permissions.MustNew(s, permissions.ActionRead)
	}
	write := func(s permissions.Section) permissions.Permission {
		return permissions.MustNew(s, permissions.ActionWrite)
	}
	manage := func(s permissions.Section) permissions.Permission {
		return permissions.MustNew(s, permissions.ActionManage)
	}

	return Policy{
		Grants: map[Role]GrantSet{
			RoleSuperAdmin: NewGrantSet(permissions.Wildcard),

			// Operator admins manage every section of their own operator.
			// Kept explicit instead of a wildcard so platform-wide access
			// stays exclusive to the super-administrator.
			RoleOperatorAdmin: NewGrantSet(
				manage(permissions.SectionVehicles),
				manage(permissions.SectionDrivers),
				manage(permissions.SectionRoutes),
				manage(permissions.SectionSchedules),
				manage(permissions.SectionTrips),
				manage(permissions.SectionBranches),
				manage(permissions.SectionAnalytics),
				manage(permissions.SectionFinance),
				manage(permissions.SectionFuel),
				manage(permissions.SectionFleet),
				manage(permissions.SectionSettings),
				manage(permissions.SectionOrganization),
				manage(permissions.SectionUsers),
				manage(permissions.SectionOverview),
			),

			RoleDriver: NewGrantSet(
				read(permissions.SectionOverview),
				read(permissions.SectionRoutes),
				read(permissions.SectionSchedules),
				read(permissions.SectionTrips),
				write(permissions.SectionTrips),
				read(permissions.SectionFuel),
				write(permissions.SectionFuel),
			),

			RoleInspector: NewGrantSet(
				read(permissions.SectionOverview),
				read(permissions.SectionVehicles),
				read(permissions.SectionDrivers),
				read(permissions.SectionRoutes),
				read(permissions.SectionSchedules),
				read(permissions.SectionTrips),
				read(permissions.SectionFleet),
			),

			RolePassenger: NewGrantSet(
				read(permissions.SectionOverview),
				read(permissions.SectionRoutes),
				read(permissions.SectionSchedules),
				read(permissions.SectionTrips),
			),

			RoleGovObserver: NewGrantSet(
				read(permissions.SectionOverview),
				read(permissions.SectionAnalytics),
				read(permissions.SectionFinance),
				read(permissions.SectionVehicles),
				read(permissions.SectionDrivers),
				read(permissions.SectionRoutes),
				read(permissions.SectionSchedules),
				read(permissions.SectionTrips),
			),
		},

		// Roles absent from the hierarchy may create nothing. Only the
		// super-administrator may create its own kind.
		Hierarchy: map[Role][]Role{
			RoleSuperAdmin: {
				RoleSuperAdmin,
				RoleOperatorAdmin,
				RoleDriver,
				RoleInspector,
				RolePassenger,
				RoleGovObserver,
			},
			RoleOperatorAdmin: {
				RoleDriver,
				RoleInspector,
				RolePassenger,
			},
		},
	}
}
