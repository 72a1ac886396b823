// Package audit defines the append-only record of privileged actions.
package audit

import (
	"context"
	"time"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

const (
	ActionCompanyDeleted   = "company.deleted"
	ActionCompanySuspended = "company.suspended"
	ActionPlanChanged      = "company.plan_changed"
	ActionUserRoleChanged  = "user.role_changed"
	ActionUserDeleted      = "user.deleted"
)

// Actor identifies who performed a privileged action.
type Actor struct {
	ID    uint
	Email string
	Name  string
}

// Entry is one audit record. Entries are never mutated after writing.
type Entry struct {
	Actor           Actor
	Action          string
	Resource        string
	ResourceID      string
	TargetCompanyID *uint
	Details         string
	Severity        Severity
	Success         bool
	CreatedAt       time.Time
}

// Writer persists audit entries. Implementations must be safe to call
// fire-and-forget: a failed write is logged by the caller, never rethrown
// into the triggering operation.
type Writer interface {
	Write(ctx context.Context, entry Entry) error
}
