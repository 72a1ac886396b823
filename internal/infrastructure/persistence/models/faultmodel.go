package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type FaultModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;index"`
	SiteID      *uint  `gorm:"index"`
	PlantID     *uint  `gorm:"index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Priority    string `gorm:"size:20;not null;default:'normal'"`
	Status      string `gorm:"size:20;not null;default:'open'"`
	ReportedBy  uint   `gorm:"not null"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FaultModel) TableName() string {
	return constants.TableFaults
}
