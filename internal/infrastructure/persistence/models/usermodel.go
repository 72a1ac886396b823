package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	CompanyID    uint   `gorm:"not null;index"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	DisplayName  string `gorm:"size:255;not null"`
	Role         string `gorm:"size:30;not null;index"`
	// Assigned site/plant IDs bound the visibility scope of guard and
	// customer roles. Stored as JSON uint arrays.
	SiteIDs   datatypes.JSON
	PlantIDs  datatypes.JSON
	Status    string `gorm:"size:20;not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
