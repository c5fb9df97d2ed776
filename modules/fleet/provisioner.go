package fleet

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fleetkit/fleetkit/pkg/rbac"
)

// ErrProvisioningDenied is returned when the creator's role may not create
// accounts holding the target role.
var ErrProvisioningDenied = errors.New("fleet.provisioning_denied")

// CreateUserFunc performs the actual account creation once the guard has
// allowed it.
type CreateUserFunc func(ctx context.Context) error

// UserProvisioner gates account creation on the role hierarchy. The guard
// runs before any side effect, so a denied request creates nothing.
type UserProvisioner struct {
	guard *rbac.ProvisioningGuard
	log   *slog.Logger
}

// NewUserProvisioner creates a provisioner. A nil logger falls back to
// slog.Default().
func NewUserProvisioner(guard *rbac.ProvisioningGuard, log *slog.Logger) *UserProvisioner {
	if log == nil {
		log = slog.Default()
	}
	return &UserProvisioner{guard: guard, log: log}
}

// Provision creates an account holding the target role on behalf of the
// creator. Unknown target roles and hierarchy violations abort before
// create runs.
func (p *UserProvisioner) Provision(ctx context.Context, creator, target rbac.Role, create CreateUserFunc) error {
	if !rbac.ValidRole(target) {
		return rbac.ErrUnknownRole
	}

	if !p.guard.CanProvision(creator, target) {
		p.log.WarnContext(ctx, "account provisioning denied",
			slog.String("creator_role", string(creator)),
			slog.String("target_role", string(target)),
		)
		return ErrProvisioningDenied
	}

	return create(ctx)
}
