package dto

import "time"

// DeletionResult reports one offboarding run. Success reflects only whether
// the root company row was deleted: collection-level failures accumulate in
// Errors and never stop the run, so a partially failed run still removes
// everything it could.
type DeletionResult struct {
	CompanyID    uint             `json:"company_id"`
	Deleted      map[string]int64 `json:"deleted"`
	BlobsDeleted int64            `json:"blobs_deleted"`
	Errors       []string         `json:"errors,omitempty"`
	Success      bool             `json:"success"`
}

// DeletionSummary is the read-only preview of an offboarding run, computed
// with the same per-collection filters the deletion itself uses.
type DeletionSummary struct {
	CompanyID   uint             `json:"company_id"`
	CompanyName string           `json:"company_name"`
	Counts      map[string]int64 `json:"counts"`
	BlobObjects int64            `json:"blob_objects"`
	TotalRows   int64            `json:"total_rows"`
}

// AuditLogEntry is one row of the platform console's audit trail.
type AuditLogEntry struct {
	ActorID         uint      `json:"actor_id"`
	ActorEmail      string    `json:"actor_email,omitempty"`
	ActorName       string    `json:"actor_name,omitempty"`
	Action          string    `json:"action"`
	Resource        string    `json:"resource"`
	ResourceID      string    `json:"resource_id,omitempty"`
	TargetCompanyID *uint     `json:"target_company_id,omitempty"`
	Details         string    `json:"details,omitempty"`
	Severity        string    `json:"severity"`
	Success         bool      `json:"success"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuditLogListResponse is a page of the audit trail, newest first.
type AuditLogListResponse struct {
	Entries []AuditLogEntry `json:"entries"`
	Total   int64           `json:"total"`
}
