package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetkit/fleetkit/pkg/pg"
)

// pgProvider loads operators from the platform's Postgres database.
type pgProvider struct {
	pool *pgxpool.Pool
}

// NewPGProvider creates a Provider backed by the given connection pool.
// Identifiers that parse as UUIDs are looked up by primary key, anything
// else by slug.
func NewPGProvider(pool *pgxpool.Pool) Provider {
	return &pgProvider{pool: pool}
}

// GetByIdentifier retrieves an operator by UUID or slug.
func (p *pgProvider) GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error) {
	if identifier == "" {
		return nil, ErrInvalidIdentifier
	}

	query := `SELECT id, slug, name, region, active, created_at FROM operators WHERE slug = $1`
	if _, err := uuid.Parse(identifier); err == nil {
		query = `SELECT id, slug, name, region, active, created_at FROM operators WHERE id = $1`
	}

	var t Tenant
	row := p.pool.QueryRow(ctx, query, identifier)
	if err := row.Scan(&t.ID, &t.Slug, &t.Name, &t.Region, &t.Active, &t.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, errors.Join(ErrTenantNotFound, err)
		}
		return nil, err
	}

	return &t, nil
}
