package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// SiteModel is a physical installation location (saha) holding one or more plants.
type SiteModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:255;not null"`
	City      string `gorm:"size:100"`
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteModel) TableName() string {
	return constants.TableSites
}
