package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/mappers"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/shared/errors"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepositoryImpl) ListRecentByCompany(ctx context.Context, companyID uint, limit int) ([]*notification.Notification, error) {
	var modelList []*models.NotificationModel

	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications by company: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *NotificationRepositoryImpl) AddReadBy(ctx context.Context, id uint, userID uint) error {
	return r.unionIDColumn(ctx, id, userID, "read_by")
}

func (r *NotificationRepositoryImpl) AddHiddenBy(ctx context.Context, id uint, userID uint) error {
	return r.unionIDColumn(ctx, id, userID, "hidden_by")
}

// unionIDColumn appends userID to one of the JSON ID-array columns if it is
// not already present. Read-modify-write under a row lock: the arrays are
// small and contention is per-notification.
func (r *NotificationRepositoryImpl) unionIDColumn(ctx context.Context, id uint, userID uint, column string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		// sqlite has no row locks; its single-writer transactions already
		// serialize the read-modify-write.
		if tx.Dialector.Name() == "mysql" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var model models.NotificationModel
		if err := query.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("notification not found")
			}
			return fmt.Errorf("failed to load notification: %w", err)
		}

		raw := model.ReadBy
		if column == "hidden_by" {
			raw = model.HiddenBy
		}

		var ids []uint
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &ids); err != nil {
				return fmt.Errorf("failed to decode %s: %w", column, err)
			}
		}
		for _, existing := range ids {
			if existing == userID {
				return nil
			}
		}
		ids = append(ids, userID)

		encoded, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", column, err)
		}

		if err := tx.Model(&models.NotificationModel{}).
			Where("id = ?", id).
			Update(column, encoded).Error; err != nil {
			return fmt.Errorf("failed to update %s: %w", column, err)
		}
		return nil
	})
}
