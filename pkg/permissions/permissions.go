package permissions

import "strings"

// Section enumerates the application areas a permission governs.
// The set is closed: permissions over anything else are unrepresentable.
type Section string

const (
	SectionVehicles     Section = "vehicles"
	SectionDrivers      Section = "drivers"
	SectionRoutes       Section = "routes"
	SectionSchedules    Section = "schedules"
	SectionTrips        Section = "trips"
	SectionBranches     Section = "branches"
	SectionAnalytics    Section = "analytics"
	SectionFinance      Section = "finance"
	SectionFuel         Section = "fuel"
	SectionFleet        Section = "fleet"
	SectionSettings     Section = "settings"
	SectionOrganization Section = "organization"
	SectionUsers        Section = "users"
	SectionOverview     Section = "overview"
)

// Action enumerates the operation kinds a permission can grant.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
	// ActionManage subsumes read, write and delete within its own section.
	ActionManage Action = "manage"
)

// Permission is the canonical "<section>.<action>" identifier, or the
// Wildcard sentinel granting every permission in every section.
// Permissions are pure values; equality is structural.
type Permission string

// Wildcard matches every permission in every section.
const Wildcard Permission = "*"

// Delimiter separates the section and action parts of a permission.
const Delimiter = "."

// sectionDescriptions doubles as the closed-set membership check for sections.
var sectionDescriptions = map[Section]string{
	SectionVehicles:     "Vehicle registry and assignments",
	SectionDrivers:      "Driver profiles and licensing",
	SectionRoutes:       "Route definitions and stops",
	SectionSchedules:    "Timetables and service calendars",
	SectionTrips:        "Trip records and live tracking",
	SectionBranches:     "Branch offices and depots",
	SectionAnalytics:    "Operational analytics and reports",
	SectionFinance:      "Revenue, expenses and settlements",
	SectionFuel:         "Fuel logs and consumption",
	SectionFleet:        "Fleet configuration and maintenance",
	SectionSettings:     "Workspace settings",
	SectionOrganization: "Organization profile and branding",
	SectionUsers:        "User accounts and role assignments",
	SectionOverview:     "Dashboard overview",
}

var allSections = []Section{
	SectionVehicles,
	SectionDrivers,
	SectionRoutes,
	SectionSchedules,
	SectionTrips,
	SectionBranches,
	SectionAnalytics,
	SectionFinance,
	SectionFuel,
	SectionFleet,
	SectionSettings,
	SectionOrganization,
	SectionUsers,
	SectionOverview,
}

var allActions = []Action{ActionRead, ActionWrite, ActionDelete, ActionManage}

// Sections returns every section in the catalog.
// The returned slice is a copy and safe to modify.
func Sections() []Section {
	out := make([]Section, len(allSections))
	copy(out, allSections)
	return out
}

// Actions returns every action in the catalog.
// The returned slice is a copy and safe to modify.
func Actions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// ValidSection reports whether s belongs to the closed section enumeration.
func ValidSection(s Section) bool {
	_, ok := sectionDescriptions[s]
	return ok
}

// ValidAction reports whether a belongs to the closed action enumeration.
func ValidAction(a Action) bool {
	switch a {
	case ActionRead, ActionWrite, ActionDelete, ActionManage:
		return true
	default:
		return false
	}
}

// New builds the canonical permission for the given section and action.
// Returns ErrInvalidSection or ErrInvalidAction for values outside the
// closed enumerations.
func New(s Section, a Action) (Permission, error) {
	if !ValidSection(s) {
		return "", ErrInvalidSection
	}
	if !ValidAction(a) {
		return "", ErrInvalidAction
	}
	return Permission(string(s) + Delimiter + string(a)), nil
}

// MustNew is like New but panics on invalid input. Use it for static
// permission values where a failure is a programming error.
func MustNew(s Section, a Action) Permission {
	p, err := New(s, a)
	if err != nil {
		panic("permissions: " + err.Error())
	}
	return p
}

// Parse validates a raw string against the catalog's closed shape and
// returns it as a Permission. Accepts the wildcard sentinel and any
// "<section>.<action>" pair from the catalog; anything else fails with
// ErrMalformedPermission. Inputs produced by New never fail here.
func Parse(raw string) (Permission, error) {
	if raw == string(Wildcard) {
		return Wildcard, nil
	}

	section, action, ok := strings.Cut(raw, Delimiter)
	if !ok {
		return "", ErrMalformedPermission
	}
	if !ValidSection(Section(section)) || !ValidAction(Action(action)) {
		return "", ErrMalformedPermission
	}

	return Permission(raw), nil
}

// IsWildcard reports whether the permission is the universal sentinel.
func (p Permission) IsWildcard() bool {
	return p == Wildcard
}

// String returns the canonical identifier.
func (p Permission) String() string {
	return string(p)
}

// Split decomposes a concrete permission into its section and action.
// The wildcard sentinel and any malformed value fail with
// ErrMalformedPermission.
func (p Permission) Split() (Section, Action, error) {
	if p.IsWildcard() {
		return "", "", ErrMalformedPermission
	}

	section, action, ok := strings.Cut(string(p), Delimiter)
	if !ok {
		return "", "", ErrMalformedPermission
	}

	s, a := Section(section), Action(action)
	if !ValidSection(s) || !ValidAction(a) {
		return "", "", ErrMalformedPermission
	}

	return s, a, nil
}

// Describe returns a stable human-readable description of a section,
// intended for audit trails and UI labels, never for decisions.
func Describe(s Section) (string, error) {
	desc, ok := sectionDescriptions[s]
	if !ok {
		return "", ErrInvalidSection
	}
	return desc, nil
}

// All enumerates every concrete permission in the catalog, one per
// section and action pair, in catalog order. The wildcard is not included.
func All() []Permission {
	out := make([]Permission, 0, len(allSections)*len(allActions))
	for _, s := range allSections {
		for _, a := range allActions {
			out = append(out, Permission(string(s)+Delimiter+string(a)))
		}
	}
	return out
}
