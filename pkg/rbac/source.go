package rbac

import "context"

// Policy is the static access-control configuration: the grant table
// (what each role may do) and the provisioning hierarchy (which roles
// each role may create). Both tables are loaded once at process start
// and never mutated afterwards.
type Policy struct {
	Grants    map[Role]GrantSet
	Hierarchy map[Role][]Role
}

// PolicySource defines the interface for providing policy data.
type PolicySource interface {
	// Load returns the full policy. Implementations must return a policy
	// the caller can own: later calls must not observe caller mutations.
	Load(ctx context.Context) (Policy, error)
}

// staticPolicySource serves a policy defined in code (struct literals).
type staticPolicySource struct {
	policy Policy
}

// NewStaticPolicySource creates a PolicySource from an in-code policy.
// The input is deep-copied so external mutations cannot leak into the
// tables after construction.
func NewStaticPolicySource(p Policy) PolicySource {
	return &staticPolicySource{policy: clonePolicy(p)}
}

// Load returns an independent copy of the policy.
func (s *staticPolicySource) Load(_ context.Context) (Policy, error) {
	return clonePolicy(s.policy), nil
}

func clonePolicy(p Policy) Policy {
	grants := make(map[Role]GrantSet, len(p.Grants))
	for role, set := range p.Grants {
		grants[role] = set.Clone()
	}

	hierarchy := make(map[Role][]Role, len(p.Hierarchy))
	for creator, targets := range p.Hierarchy {
		cp := make([]Role, len(targets))
		copy(cp, targets)
		hierarchy[creator] = cp
	}

	return Policy{Grants: grants, Hierarchy: hierarchy}
}
