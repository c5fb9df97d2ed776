package rbac

import (
	"context"
	"errors"
	"fmt"
)

// ProvisioningGuard decides whether one role may create an account with
// another role. It is consulted on account-creation paths only, to stop
// privilege escalation before any side effect happens. The guard is
// immutable after construction and safe for concurrent use.
type ProvisioningGuard struct {
	hierarchy map[Role]map[Role]struct{}
}

// NewProvisioningGuard builds a guard from the policy's hierarchy table.
// Construction fails fast when the table names a role outside the closed
// enumeration, either as creator or as target.
func NewProvisioningGuard(ctx context.Context, source PolicySource) (*ProvisioningGuard, error) {
	policy, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	hierarchy := make(map[Role]map[Role]struct{}, len(policy.Hierarchy))
	for creator, targets := range policy.Hierarchy {
		if !ValidRole(creator) {
			return nil, errors.Join(ErrUnknownRole, fmt.Errorf("hierarchy entry for unknown role %q", creator))
		}
		set := make(map[Role]struct{}, len(targets))
		for _, target := range targets {
			if !ValidRole(target) {
				return nil, errors.Join(ErrUnknownRole, fmt.Errorf("role %q may create unknown role %q", creator, target))
			}
			set[target] = struct{}{}
		}
		hierarchy[creator] = set
	}

	return &ProvisioningGuard{hierarchy: hierarchy}, nil
}

// CanProvision reports whether creator may provision an account holding the
// target role. A creator absent from the hierarchy table may create nothing;
// that is a normal false, not an error. Self-provisioning is permitted only
// when the role lists its own kind explicitly.
func (g *ProvisioningGuard) CanProvision(creator, target Role) bool {
	targets, ok := g.hierarchy[creator]
	if !ok {
		return false
	}
	_, ok = targets[target]
	return ok
}
