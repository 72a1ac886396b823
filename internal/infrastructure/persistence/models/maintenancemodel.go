package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// ElectricalMaintenanceModel and MechanicalMaintenanceModel are separate
// collections with the same shape; crews file them independently.
type ElectricalMaintenanceModel struct {
	ID          uint  `gorm:"primaryKey"`
	CompanyID   uint  `gorm:"not null;index"`
	SiteID      *uint `gorm:"index"`
	PlantID     *uint `gorm:"index"`
	PerformedBy uint  `gorm:"not null"`
	Checklist   datatypes.JSON
	Notes       string `gorm:"type:text"`
	PhotoPaths  datatypes.JSON
	PerformedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ElectricalMaintenanceModel) TableName() string {
	return constants.TableElectricalMaintenance
}

type MechanicalMaintenanceModel struct {
	ID          uint  `gorm:"primaryKey"`
	CompanyID   uint  `gorm:"not null;index"`
	SiteID      *uint `gorm:"index"`
	PlantID     *uint `gorm:"index"`
	PerformedBy uint  `gorm:"not null"`
	Checklist   datatypes.JSON
	Notes       string `gorm:"type:text"`
	PhotoPaths  datatypes.JSON
	PerformedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MechanicalMaintenanceModel) TableName() string {
	return constants.TableMechanicalMaintenance
}
