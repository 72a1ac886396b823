package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	// ListRecentByCompany returns the tenant's most recent notifications
	// ordered by creation time descending. Visibility filtering happens in
	// the domain layer, not in the query.
	ListRecentByCompany(ctx context.Context, companyID uint, limit int) ([]*Notification, error)
	// AddReadBy unions the user into the row's readBy set.
	AddReadBy(ctx context.Context, id uint, userID uint) error
	// AddHiddenBy unions the user into the row's hiddenBy set. The row
	// itself is never removed by this path.
	AddHiddenBy(ctx context.Context, id uint, userID uint) error
}
