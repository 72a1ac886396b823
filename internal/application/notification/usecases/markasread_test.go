package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/errors"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

func TestMarkAsRead_AddsReaderAndInvalidatesCache(t *testing.T) {
	n := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleManager}, nil)

	var addedUser uint
	repo := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		addReadByFn: func(ctx context.Context, id uint, userID uint) error {
			addedUser = userID
			return nil
		},
	}
	var invalidated []string
	cache := &mockCache{
		deleteFn: func(ctx context.Context, keys ...string) error {
			invalidated = append(invalidated, keys...)
			return nil
		},
	}
	uc := NewMarkAsReadUseCase(repo, cache, logger.Nop())

	require.NoError(t, uc.Execute(context.Background(), 1, 1, 7))
	assert.Equal(t, uint(7), addedUser)
	assert.Len(t, invalidated, 1)
}

func TestMarkAsRead_AlreadyReadIsIdempotent(t *testing.T) {
	n := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleManager}, nil)
	n.MarkReadBy(7)

	repo := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		addReadByFn: func(ctx context.Context, id uint, userID uint) error {
			t.Fatal("no write expected for an already-read notification")
			return nil
		},
	}
	uc := NewMarkAsReadUseCase(repo, &mockCache{}, logger.Nop())

	require.NoError(t, uc.Execute(context.Background(), 1, 1, 7))
}

func TestMarkAsRead_CrossTenantIsForbidden(t *testing.T) {
	n := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleManager}, nil)

	repo := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
	}
	uc := NewMarkAsReadUseCase(repo, &mockCache{}, logger.Nop())

	err := uc.Execute(context.Background(), 1, 99, 7)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestMarkAllAsRead_TouchesOnlyVisibleUnread(t *testing.T) {
	siteA := uint(10)
	siteB := uint(20)

	visible := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleGuard}, &siteA)
	outOfScope := broadcastWithScope(t, 2, []uservo.Role{uservo.RoleGuard}, &siteB)
	alreadyRead := broadcastWithScope(t, 3, []uservo.Role{uservo.RoleGuard}, &siteA)
	alreadyRead.MarkReadBy(7)

	var marked []uint
	repo := &mockNotificationRepo{
		listRecentFn: func(ctx context.Context, companyID uint, limit int) ([]*notification.Notification, error) {
			return []*notification.Notification{visible, outOfScope, alreadyRead}, nil
		},
		addReadByFn: func(ctx context.Context, id uint, userID uint) error {
			marked = append(marked, id)
			return nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return makeTestUser(id, 1, uservo.RoleGuard, []uint{siteA}, nil), nil
		},
	}
	list := NewListNotificationsUseCase(repo, userRepo, 100, logger.Nop())
	uc := NewMarkAllAsReadUseCase(repo, list, &mockCache{}, logger.Nop())

	require.NoError(t, uc.Execute(context.Background(), 1, 7))
	assert.Equal(t, []uint{1}, marked)
}

func TestHideNotification_AddsTombstone(t *testing.T) {
	n := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleManager}, nil)

	var hiddenFor uint
	repo := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		addHiddenFn: func(ctx context.Context, id uint, userID uint) error {
			hiddenFor = userID
			return nil
		},
	}
	uc := NewHideNotificationUseCase(repo, logger.Nop())

	require.NoError(t, uc.Execute(context.Background(), 1, 1, 7))
	assert.Equal(t, uint(7), hiddenFor)
}

func TestHideNotification_AlreadyHiddenIsIdempotent(t *testing.T) {
	n := broadcastWithScope(t, 1, []uservo.Role{uservo.RoleManager}, nil)
	n.HideFor(7)

	repo := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		addHiddenFn: func(ctx context.Context, id uint, userID uint) error {
			t.Fatal("no write expected for an already-hidden notification")
			return nil
		},
	}
	uc := NewHideNotificationUseCase(repo, logger.Nop())

	require.NoError(t, uc.Execute(context.Background(), 1, 1, 7))
}
