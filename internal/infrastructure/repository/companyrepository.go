package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/domain/company"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/mappers"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/shared/errors"
)

type CompanyRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepositoryImpl{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map company entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set company ID: %w", err)
	}

	return nil
}

func (r *CompanyRepositoryImpl) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map company entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}

func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}

func (r *CompanyRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*company.Company, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var modelList []*models.CompanyModel
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
