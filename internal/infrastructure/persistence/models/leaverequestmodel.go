package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// LeaveRequestModel covers leave, holiday, and shift-schedule entries filed
// by field personnel.
type LeaveRequestModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Kind      string `gorm:"size:30;not null"` // leave / holiday / shift_schedule
	StartDate time.Time
	EndDate   time.Time
	Status    string `gorm:"size:20;not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequestModel) TableName() string {
	return constants.TableLeaveRequests
}
