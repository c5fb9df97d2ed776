package audit

import (
	"time"

	"github.com/fleetkit/fleetkit/pkg/permissions"
	"github.com/fleetkit/fleetkit/pkg/rbac"
)

// Event is a single recorded authorization decision. The decision itself is
// deterministic and side-effect-free, so recording it cannot cause double
// effects no matter how often the surrounding request is retried.
type Event struct {
	TenantID   string                 `json:"tenant_id,omitempty"`
	Role       rbac.Role              `json:"role,omitempty"`
	Permission permissions.Permission `json:"permission"`
	Allowed    bool                   `json:"allowed"`
	Reason     string                 `json:"reason,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
