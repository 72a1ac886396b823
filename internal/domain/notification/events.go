package notification

import (
	"time"

	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
)

type CreatedEvent struct {
	CompanyID uint
	UserID    *uint
	Type      vo.NotificationType
	CreatedAt time.Time
}
