package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type StockItemModel struct {
	ID           uint   `gorm:"primaryKey"`
	CompanyID    uint   `gorm:"not null;index"`
	SiteID       *uint  `gorm:"index"`
	Name         string `gorm:"size:255;not null"`
	Unit         string `gorm:"size:30"`
	CurrentStock int    `gorm:"not null;default:0"`
	MinimumStock int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StockItemModel) TableName() string {
	return constants.TableStockItems
}

type StockMovementModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;index"`
	StockItemID uint   `gorm:"not null;index"`
	Direction   string `gorm:"size:10;not null"` // in / out
	Quantity    int    `gorm:"not null"`
	Reason      string `gorm:"size:255"`
	MovedBy     uint   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StockMovementModel) TableName() string {
	return constants.TableStockMovements
}
