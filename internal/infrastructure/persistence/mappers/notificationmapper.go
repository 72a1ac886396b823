package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/shared/utils"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error)
}

type notificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &notificationMapperImpl{}
}

func (m *notificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	notifType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification type: %w", err)
	}

	roles, err := decodeRoles(model.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to decode role list: %w", err)
	}

	metaMap, err := decodeMap(model.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	readBy, err := decodeUintSlice(model.ReadBy)
	if err != nil {
		return nil, fmt.Errorf("failed to decode readBy: %w", err)
	}

	hiddenBy, err := decodeUintSlice(model.HiddenBy)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hiddenBy: %w", err)
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.CompanyID,
		model.UserID,
		notifType,
		model.Title,
		model.Message,
		model.ActionURL,
		roles,
		vo.MetadataFromMap(metaMap),
		readBy,
		hiddenBy,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *notificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	roles, err := encodeRoles(entity.Roles())
	if err != nil {
		return nil, fmt.Errorf("failed to encode role list: %w", err)
	}

	// The metadata bag is caller-assembled; strip nils at any depth before
	// it reaches the store.
	metadata, err := encodeMap(utils.StripNilValues(entity.Metadata().ToMap()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	readBy, err := encodeUintSlice(entity.ReadBy())
	if err != nil {
		return nil, fmt.Errorf("failed to encode readBy: %w", err)
	}

	hiddenBy, err := encodeUintSlice(entity.HiddenBy())
	if err != nil {
		return nil, fmt.Errorf("failed to encode hiddenBy: %w", err)
	}

	return &models.NotificationModel{
		ID:        entity.ID(),
		CompanyID: entity.CompanyID(),
		UserID:    entity.UserID(),
		Type:      entity.Type().String(),
		Title:     entity.Title(),
		Message:   entity.Message(),
		ActionURL: entity.ActionURL(),
		Roles:     roles,
		Metadata:  metadata,
		ReadBy:    readBy,
		HiddenBy:  hiddenBy,
		ExpiresAt: entity.ExpiresAt(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *notificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func decodeRoles(data datatypes.JSON) ([]uservo.Role, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	roles := make([]uservo.Role, 0, len(names))
	for _, name := range names {
		role, err := uservo.NewRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func encodeRoles(roles []uservo.Role) (datatypes.JSON, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return json.Marshal(names)
}

func decodeMap(data datatypes.JSON) (map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeMap(m map[string]interface{}) (datatypes.JSON, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func decodeUintSlice(data datatypes.JSON) ([]uint, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []uint
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeUintSlice(ids []uint) (datatypes.JSON, error) {
	if ids == nil {
		ids = []uint{}
	}
	return json.Marshal(ids)
}
