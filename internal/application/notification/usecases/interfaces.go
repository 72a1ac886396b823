package usecases

import (
	"context"
	"time"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

// NotificationRepository is the persistence surface the notification use
// cases need.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	GetByID(ctx context.Context, id uint) (*notification.Notification, error)
	ListRecentByCompany(ctx context.Context, companyID uint, limit int) ([]*notification.Notification, error)
	AddReadBy(ctx context.Context, id uint, userID uint) error
	AddHiddenBy(ctx context.Context, id uint, userID uint) error
}

// UserRepository resolves viewers and recipient groups.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
	ListByCompanyAndRoles(ctx context.Context, companyID uint, roles []uservo.Role) ([]*user.User, error)
}

// Cache is the advisory read cache. A miss or failure falls through to the
// repository.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// PushSender delivers mobile pushes. Best effort throughout: callers log
// errors and continue.
type PushSender interface {
	Send(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error
}

// EmailSender delivers transactional mail, also best effort.
type EmailSender interface {
	Send(to []string, subject, htmlBody string) error
}
