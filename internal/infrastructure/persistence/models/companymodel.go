package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// CompanyModel is the tenant root row. Every other tenant-scoped table
// references it through company_id; the offboarding path deletes this row
// last, after all dependents.
type CompanyModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null"`
	Plan               string `gorm:"size:50;not null;default:'basic'"`
	Status             string `gorm:"size:20;not null;default:'active'"`
	StorageUsedBytes   int64  `gorm:"not null;default:0"`
	StorageObjectCount int64  `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
