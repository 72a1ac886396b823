package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// InventoryItemModel tracks installed equipment (panels, inverters, meters).
// CompanyID is nullable: rows created before tenant scoping was introduced
// carry only a site or plant reference. The purge path finds those legacy
// rows through site/plant membership instead of company_id.
type InventoryItemModel struct {
	ID           uint  `gorm:"primaryKey"`
	CompanyID    *uint `gorm:"index"`
	SiteID       *uint `gorm:"index"`
	PlantID      *uint `gorm:"index"`
	Name         string `gorm:"size:255;not null"`
	SerialNumber string `gorm:"size:100"`
	Category     string `gorm:"size:50"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (InventoryItemModel) TableName() string {
	return constants.TableInventoryItems
}

// WorkRecordModel logs work performed against inventory or plants.
type WorkRecordModel struct {
	ID          uint  `gorm:"primaryKey"`
	CompanyID   uint  `gorm:"not null;index"`
	SiteID      *uint `gorm:"index"`
	PlantID     *uint `gorm:"index"`
	Description string `gorm:"type:text"`
	PerformedBy uint   `gorm:"not null"`
	PerformedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (WorkRecordModel) TableName() string {
	return constants.TableWorkRecords
}
