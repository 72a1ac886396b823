package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

// AuditLogModel is an append-only record of a privileged action. Rows are
// never updated; the tenant cascade removes rows whose target company is
// being offboarded.
type AuditLogModel struct {
	ID              uint   `gorm:"primaryKey"`
	ActorID         uint   `gorm:"not null;index"`
	ActorEmail      string `gorm:"size:255"`
	ActorName       string `gorm:"size:255"`
	Action          string `gorm:"size:100;not null;index"`
	Resource        string `gorm:"size:100;not null"`
	ResourceID      string `gorm:"size:100"`
	TargetCompanyID *uint  `gorm:"index"`
	Details         string `gorm:"type:text"`
	Severity        string `gorm:"size:20;not null;default:'info'"`
	Success         bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
