// Package company holds the tenant root aggregate. A company owns every
// other tenant-scoped record by reference through company_id; removing one
// is the job of the offboarding orchestrator, which deletes the root last.
package company

import (
	"fmt"
	"time"

	vo "github.com/heliox-inc/heliox/internal/domain/company/valueobjects"
)

type Company struct {
	id                 uint
	name               string
	plan               vo.Plan
	status             vo.Status
	storageUsedBytes   int64
	storageObjectCount int64
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCompany(name string, plan vo.Plan) (*Company, error) {
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("company name exceeds maximum length of 255 characters")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan")
	}

	now := time.Now()
	return &Company{
		name:      name,
		plan:      plan,
		status:    vo.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCompany(
	id uint,
	name string,
	plan vo.Plan,
	status vo.Status,
	storageUsedBytes, storageObjectCount int64,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Company{
		id:                 id,
		name:               name,
		plan:               plan,
		status:             status,
		storageUsedBytes:   storageUsedBytes,
		storageObjectCount: storageObjectCount,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (c *Company) ID() uint                  { return c.id }
func (c *Company) Name() string              { return c.name }
func (c *Company) Plan() vo.Plan             { return c.plan }
func (c *Company) Status() vo.Status         { return c.status }
func (c *Company) StorageUsedBytes() int64   { return c.storageUsedBytes }
func (c *Company) StorageObjectCount() int64 { return c.storageObjectCount }
func (c *Company) CreatedAt() time.Time      { return c.createdAt }
func (c *Company) UpdatedAt() time.Time      { return c.updatedAt }

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) ChangePlan(plan vo.Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid plan")
	}
	c.plan = plan
	c.updatedAt = time.Now()
	return nil
}

func (c *Company) Suspend() {
	c.status = vo.StatusSuspended
	c.updatedAt = time.Now()
}

// BeginDeletion marks the tenant as offboarding. The flag is advisory: the
// orchestrator proceeds regardless, but dashboards use it to stop serving
// the tenant while dependents are being removed.
func (c *Company) BeginDeletion() {
	c.status = vo.StatusDeleting
	c.updatedAt = time.Now()
}

func (c *Company) RecordStorageUsage(bytes, objects int64) {
	c.storageUsedBytes = bytes
	c.storageObjectCount = objects
	c.updatedAt = time.Now()
}
