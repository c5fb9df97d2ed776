package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is a transit operator: the isolation boundary every resource in
// the platform belongs to. Only the fields needed for request-scoped
// operations are carried here; operator management lives elsewhere.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads operator information from a data source.
// Implementations should accept whatever identifier format the deployment
// uses (UUID, slug) and return ErrTenantNotFound when nothing matches.
type Provider interface {
	GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error)
}

// ProviderFunc is an adapter to use ordinary functions as Provider.
type ProviderFunc func(ctx context.Context, identifier string) (*Tenant, error)

// GetByIdentifier implements Provider.
func (f ProviderFunc) GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error) {
	return f(ctx, identifier)
}
