package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// ProductionRecordModel is a daily production reading per plant.
type ProductionRecordModel struct {
	ID            uint      `gorm:"primaryKey"`
	CompanyID     uint      `gorm:"not null;index"`
	PlantID       uint      `gorm:"not null;index"`
	Date          time.Time `gorm:"not null;index"`
	ProductionKWH float64
	IrradianceWM2 float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductionRecordModel) TableName() string {
	return constants.TableProductionRecords
}

type PowerOutageModel struct {
	ID        uint  `gorm:"primaryKey"`
	CompanyID uint  `gorm:"not null;index"`
	SiteID    *uint `gorm:"index"`
	PlantID   *uint `gorm:"index"`
	StartedAt time.Time
	EndedAt   *time.Time
	Cause     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PowerOutageModel) TableName() string {
	return constants.TablePowerOutages
}
