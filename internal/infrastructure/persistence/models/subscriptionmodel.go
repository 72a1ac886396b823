package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type SubscriptionModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;uniqueIndex"`
	Plan      string `gorm:"size:50;not null"`
	Status    string `gorm:"size:20;not null;default:'active'"`
	Features  datatypes.JSON
	RenewsAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

type UpgradeRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyID     uint   `gorm:"not null;index"`
	RequestedBy   uint   `gorm:"not null"`
	RequestedPlan string `gorm:"size:50;not null"`
	Status        string `gorm:"size:20;not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UpgradeRequestModel) TableName() string {
	return constants.TableUpgradeRequests
}
