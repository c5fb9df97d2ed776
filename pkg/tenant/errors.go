package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when no operator matches the identifier.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInvalidIdentifier is returned when the identifier format is invalid.
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")

	// ErrNoTenantInContext is returned when no operator is found in context.
	ErrNoTenantInContext = errors.New("no tenant in context")

	// ErrInactiveTenant is returned when the resolved operator is suspended.
	ErrInactiveTenant = errors.New("tenant is inactive")
)
