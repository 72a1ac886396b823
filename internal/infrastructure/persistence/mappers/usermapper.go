package mappers

import (
	"fmt"

	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(modelList []*models.UserModel) ([]*user.User, error)
}

type userMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := uservo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email: %w", err)
	}

	role, err := uservo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	siteIDs, err := decodeUintSlice(model.SiteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to decode site assignments: %w", err)
	}

	plantIDs, err := decodeUintSlice(model.PlantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plant assignments: %w", err)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.CompanyID,
		email,
		model.PasswordHash,
		model.DisplayName,
		role,
		siteIDs,
		plantIDs,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	siteIDs, err := encodeUintSlice(entity.SiteIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode site assignments: %w", err)
	}

	plantIDs, err := encodeUintSlice(entity.PlantIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode plant assignments: %w", err)
	}

	return &models.UserModel{
		ID:           entity.ID(),
		CompanyID:    entity.CompanyID(),
		Email:        entity.Email().String(),
		PasswordHash: entity.PasswordHash(),
		DisplayName:  entity.DisplayName(),
		Role:         entity.Role().String(),
		SiteIDs:      siteIDs,
		PlantIDs:     plantIDs,
		Status:       entity.Status(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *userMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
