package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type BackupModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Path      string `gorm:"size:512;not null"`
	SizeBytes int64
	Status    string `gorm:"size:20;not null;default:'completed'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BackupModel) TableName() string {
	return constants.TableBackups
}

// BackupLogModel is a nested child of a backup run.
type BackupLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	BackupID  uint   `gorm:"not null;index"`
	Level     string `gorm:"size:10;not null"`
	Message   string `gorm:"size:512"`
	CreatedAt time.Time
}

func (BackupLogModel) TableName() string {
	return constants.TableBackupLogs
}
