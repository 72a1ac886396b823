package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	Update(ctx context.Context, c *Company) error
	// Delete removes the tenant root row only. Dependent records are the
	// offboarding orchestrator's responsibility.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*Company, int64, error)
}
