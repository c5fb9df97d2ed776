package permissions

import "errors"

// Domain errors for the permission catalog.
var (
	// ErrInvalidSection is returned when a section is outside the closed enumeration.
	ErrInvalidSection = errors.New("permissions.invalid_section")

	// ErrInvalidAction is returned when an action is outside the closed enumeration.
	ErrInvalidAction = errors.New("permissions.invalid_action")

	// ErrMalformedPermission is returned when a raw value is neither the
	// wildcard nor a catalog "<section>.<action>" pair.
	ErrMalformedPermission = errors.New("permissions.malformed_permission")
)
