package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	// Plants the customer has purchase/monitoring rights on.
	PlantIDs  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
