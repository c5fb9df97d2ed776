package rbac

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fleetkit/fleetkit/pkg/permissions"
)

// yamlPolicy mirrors the on-disk policy document:
//
//	grants:
//	  operator_admin: [vehicles.manage, drivers.manage]
//	  passenger: [routes.read]
//	hierarchy:
//	  super_admin: [super_admin, operator_admin]
type yamlPolicy struct {
	Grants    map[string][]string `yaml:"grants"`
	Hierarchy map[string][]string `yaml:"hierarchy"`
}

type yamlPolicySource struct {
	r io.Reader
}

// NewYAMLPolicySource creates a PolicySource that reads a policy document
// from r. Role names and permission identifiers are validated against the
// closed enumerations during Load; an unknown role or a malformed
// permission fails the load rather than silently shrinking the policy.
func NewYAMLPolicySource(r io.Reader) PolicySource {
	return &yamlPolicySource{r: r}
}

// Load parses and validates the policy document.
func (s *yamlPolicySource) Load(_ context.Context) (Policy, error) {
	dec := yaml.NewDecoder(s.r)
	dec.KnownFields(true)

	var doc yamlPolicy
	if err := dec.Decode(&doc); err != nil {
		return Policy{}, fmt.Errorf("rbac: decode policy document: %w", err)
	}

	grants := make(map[Role]GrantSet, len(doc.Grants))
	for name, rawPerms := range doc.Grants {
		role := Role(name)
		if !ValidRole(role) {
			return Policy{}, errors.Join(ErrUnknownRole, fmt.Errorf("grants entry for unknown role %q", name))
		}

		perms := make([]permissions.Permission, 0, len(rawPerms))
		for _, raw := range rawPerms {
			p, err := permissions.Parse(raw)
			if err != nil {
				return Policy{}, errors.Join(err, fmt.Errorf("role %q grants invalid permission %q", name, raw))
			}
			perms = append(perms, p)
		}
		grants[role] = NewGrantSet(perms...)
	}

	hierarchy := make(map[Role][]Role, len(doc.Hierarchy))
	for name, rawTargets := range doc.Hierarchy {
		creator := Role(name)
		if !ValidRole(creator) {
			return Policy{}, errors.Join(ErrUnknownRole, fmt.Errorf("hierarchy entry for unknown role %q", name))
		}

		targets := make([]Role, 0, len(rawTargets))
		for _, raw := range rawTargets {
			target := Role(raw)
			if !ValidRole(target) {
				return Policy{}, errors.Join(ErrUnknownRole, fmt.Errorf("role %q may create unknown role %q", name, raw))
			}
			targets = append(targets, target)
		}
		hierarchy[creator] = targets
	}

	return Policy{Grants: grants, Hierarchy: hierarchy}, nil
}
