package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type ShiftReportModel struct {
	ID         uint   `gorm:"primaryKey"`
	CompanyID  uint   `gorm:"not null;index"`
	SiteID     *uint  `gorm:"index"`
	GuardID    uint   `gorm:"not null;index"`
	ShiftType  string `gorm:"size:20;not null"` // day / night
	Summary    string `gorm:"type:text"`
	Incidents  datatypes.JSON
	PhotoPaths datatypes.JSON
	FiledAt    time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ShiftReportModel) TableName() string {
	return constants.TableShiftReports
}
