package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// NotificationModel is one shared row per event. Per-user read and hide
// state lives in the ReadBy/HiddenBy JSON arrays; the row itself is only
// removed by the tenant cascade.
type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index:idx_company_created"`
	UserID    *uint  `gorm:"index"` // nil means role broadcast
	Type      string `gorm:"size:20;not null"`
	Title     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	ActionURL *string
	Roles     datatypes.JSON // role names the broadcast addresses
	Metadata  datatypes.JSON // entity refs plus optional site_id/plant_id scope
	ReadBy    datatypes.JSON // user IDs who acknowledged
	HiddenBy  datatypes.JSON // user IDs who dismissed
	ExpiresAt *time.Time
	CreatedAt time.Time `gorm:"index:idx_company_created,sort:desc"`
	UpdatedAt time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
