package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// PlantModel is a solar power-generation unit (santral) belonging to a site.
type PlantModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;index"`
	SiteID      uint   `gorm:"not null;index"`
	Name        string `gorm:"size:255;not null"`
	CapacityKWP float64
	Status      string `gorm:"size:20;not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PlantModel) TableName() string {
	return constants.TablePlants
}

// PlantMonthlyProductionModel is a nested child of a plant: one row per
// plant per month. It has no company_id of its own and is purged through
// its parent plant.
type PlantMonthlyProductionModel struct {
	ID            uint `gorm:"primaryKey"`
	PlantID       uint `gorm:"not null;index"`
	Year          int  `gorm:"not null"`
	Month         int  `gorm:"not null"`
	ProductionKWH float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PlantMonthlyProductionModel) TableName() string {
	return constants.TablePlantMonthlyProduction
}
