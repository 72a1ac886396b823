package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
)

// AuditLogRepositoryImpl persists audit entries append-only. It implements
// audit.Writer plus a listing surface for the platform console.
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepositoryImpl {
	return &AuditLogRepositoryImpl{db: db}
}

func (r *AuditLogRepositoryImpl) Write(ctx context.Context, entry audit.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	model := &models.AuditLogModel{
		ActorID:         entry.Actor.ID,
		ActorEmail:      entry.Actor.Email,
		ActorName:       entry.Actor.Name,
		Action:          entry.Action,
		Resource:        entry.Resource,
		ResourceID:      entry.ResourceID,
		TargetCompanyID: entry.TargetCompanyID,
		Details:         entry.Details,
		Severity:        string(entry.Severity),
		Success:         entry.Success,
		CreatedAt:       createdAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

func (r *AuditLogRepositoryImpl) List(ctx context.Context, limit, offset int) ([]audit.Entry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AuditLogModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var rows []*models.AuditLogModel
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, audit.Entry{
			Actor:           audit.Actor{ID: row.ActorID, Email: row.ActorEmail, Name: row.ActorName},
			Action:          row.Action,
			Resource:        row.Resource,
			ResourceID:      row.ResourceID,
			TargetCompanyID: row.TargetCompanyID,
			Details:         row.Details,
			Severity:        audit.Severity(row.Severity),
			Success:         row.Success,
			CreatedAt:       row.CreatedAt,
		})
	}
	return entries, total, nil
}
