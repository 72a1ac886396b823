package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

func TestCreateNotification_StripsNilMetadata(t *testing.T) {
	var stored *notification.Notification
	repo := &mockNotificationRepo{
		createFn: func(ctx context.Context, n *notification.Notification) error {
			stored = n
			return n.SetID(1)
		},
	}
	uc := NewCreateNotificationUseCase(repo, &mockUserRepo{}, &mockPush{}, logger.Nop())

	userID := uint(5)
	_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		UserID:    &userID,
		Type:      "info",
		Title:     "hello",
		Message:   "world",
		Metadata: map[string]interface{}{
			"fault_id": uint(3),
			"blank":    nil,
			"nested": map[string]interface{}{
				"keep": "yes",
				"drop": nil,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	flat := stored.Metadata().ToMap()
	assert.NotContains(t, flat, "blank")
	nested, ok := flat["nested"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "yes", nested["keep"])
	assert.NotContains(t, nested, "drop")
}

func TestCreateNotification_NormalizesTimestampMetadata(t *testing.T) {
	var stored *notification.Notification
	repo := &mockNotificationRepo{
		createFn: func(ctx context.Context, n *notification.Notification) error {
			stored = n
			return n.SetID(1)
		},
	}
	uc := NewCreateNotificationUseCase(repo, &mockUserRepo{}, &mockPush{}, logger.Nop())

	userID := uint(5)
	_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		UserID:    &userID,
		Type:      "warning",
		Title:     "hello",
		Message:   "world",
		Metadata: map[string]interface{}{
			// JSON-decoded unix seconds arrive as float64.
			"occurred_at": float64(1717245000),
			"fault_id":    uint(3),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	flat := stored.Metadata().ToMap()
	assert.Equal(t, "2024-06-01T12:30:00Z", flat["occurred_at"])
	assert.Equal(t, uint(3), flat["fault_id"])
}

func TestCreateNotification_RejectsUnknownRole(t *testing.T) {
	uc := NewCreateNotificationUseCase(&mockNotificationRepo{}, &mockUserRepo{}, &mockPush{}, logger.Nop())

	_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		Type:      "info",
		Title:     "hello",
		Message:   "world",
		Roles:     []string{"manager", "wizard"},
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestCreateNotification_RejectsInvalidType(t *testing.T) {
	uc := NewCreateNotificationUseCase(&mockNotificationRepo{}, &mockUserRepo{}, &mockPush{}, logger.Nop())

	_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		Type:      "shout",
		Title:     "hello",
		Message:   "world",
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestCreateNotification_TargetedPushGoesToOneUser(t *testing.T) {
	var pushedTo []uint
	push := &mockPush{
		sendFn: func(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
			pushedTo = userIDs
			return nil
		},
	}
	uc := NewCreateNotificationUseCase(&mockNotificationRepo{}, &mockUserRepo{}, push, logger.Nop())

	userID := uint(9)
	resp, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		UserID:    &userID,
		Type:      "success",
		Title:     "done",
		Message:   "backup finished",
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{9}, pushedTo)
	assert.Equal(t, "done", resp.Title)
}

func TestCreateNotification_BroadcastPushSkipsInactiveUsers(t *testing.T) {
	active := makeTestUser(1, 1, uservo.RoleManager, nil, nil)
	inactive, err := user.ReconstructUser(2, 1, mustEmail(t), "hash", "Gone", uservo.RoleManager, nil, nil, "suspended", active.CreatedAt(), active.CreatedAt())
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		listByRolesFn: func(ctx context.Context, companyID uint, roles []uservo.Role) ([]*user.User, error) {
			return []*user.User{active, inactive}, nil
		},
	}
	var pushedTo []uint
	push := &mockPush{
		sendFn: func(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
			pushedTo = userIDs
			return nil
		},
	}
	uc := NewCreateNotificationUseCase(&mockNotificationRepo{}, userRepo, push, logger.Nop())

	_, err = uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		Type:      "warning",
		Title:     "alert",
		Message:   "broadcast",
		Roles:     []string{"manager"},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, pushedTo)
}

func TestCreateNotification_PushFailureDoesNotFailCreation(t *testing.T) {
	push := &mockPush{
		sendFn: func(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
			return fmt.Errorf("gateway down")
		},
	}
	uc := NewCreateNotificationUseCase(&mockNotificationRepo{}, &mockUserRepo{}, push, logger.Nop())

	userID := uint(3)
	resp, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		CompanyID: 1,
		UserID:    &userID,
		Type:      "info",
		Title:     "still fine",
		Message:   "push may fail",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func mustEmail(t *testing.T) *uservo.Email {
	t.Helper()
	email, err := uservo.NewEmail("other@example.test")
	require.NoError(t, err)
	return email
}
