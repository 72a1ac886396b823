package mappers

import (
	"fmt"

	"github.com/heliox-inc/heliox/internal/domain/company"
	companyvo "github.com/heliox-inc/heliox/internal/domain/company/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
)

type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) (*models.CompanyModel, error)
	ToEntities(modelList []*models.CompanyModel) ([]*company.Company, error)
}

type companyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &companyMapperImpl{}
}

func (m *companyMapperImpl) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}

	plan, err := companyvo.NewPlan(model.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	status, err := companyvo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status: %w", err)
	}

	entity, err := company.ReconstructCompany(
		model.ID,
		model.Name,
		plan,
		status,
		model.StorageUsedBytes,
		model.StorageObjectCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct company entity: %w", err)
	}

	return entity, nil
}

func (m *companyMapperImpl) ToModel(entity *company.Company) (*models.CompanyModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CompanyModel{
		ID:                 entity.ID(),
		Name:               entity.Name(),
		Plan:               entity.Plan().String(),
		Status:             entity.Status().String(),
		StorageUsedBytes:   entity.StorageUsedBytes(),
		StorageObjectCount: entity.StorageObjectCount(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *companyMapperImpl) ToEntities(modelList []*models.CompanyModel) ([]*company.Company, error) {
	entities := make([]*company.Company, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map company %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
