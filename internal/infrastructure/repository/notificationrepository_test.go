package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/persistence/models"
	"github.com/heliox-inc/heliox/internal/shared/errors"
)

func setupNotificationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.NotificationModel{}))
	return db
}

func createBroadcast(t *testing.T, repo notification.Repository, companyID uint, title string) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(companyID, vo.NotificationTypeInfo, title, "message body", notification.Params{
		Roles: []uservo.Role{uservo.RoleManager},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), n))
	require.NotZero(t, n.ID())
	return n
}

func TestNotificationRepository_CreateAndGetByID(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	userID := uint(42)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	meta := vo.MetadataFromMap(map[string]interface{}{"fault_id": uint(9)})

	n, err := notification.NewNotification(1, vo.NotificationTypeWarning, "pump fault", "pump 3 stopped", notification.Params{
		UserID:    &userID,
		Metadata:  meta,
		ExpiresAt: &expires,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, n))

	loaded, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, "pump fault", loaded.Title())
	assert.Equal(t, vo.NotificationTypeWarning, loaded.Type())
	require.NotNil(t, loaded.UserID())
	assert.Equal(t, userID, *loaded.UserID())
	require.NotNil(t, loaded.ExpiresAt())
	assert.WithinDuration(t, expires, *loaded.ExpiresAt(), time.Second)
}

func TestNotificationRepository_GetByIDNotFound(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestNotificationRepository_ListRecentByCompany(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createBroadcast(t, repo, 1, fmt.Sprintf("company one %d", i))
	}
	createBroadcast(t, repo, 2, "company two")

	list, err := repo.ListRecentByCompany(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	for _, n := range list {
		assert.Equal(t, uint(1), n.CompanyID())
	}

	all, err := repo.ListRecentByCompany(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestNotificationRepository_AddReadByUnion(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createBroadcast(t, repo, 1, "shared row")

	require.NoError(t, repo.AddReadBy(ctx, n.ID(), 7))
	require.NoError(t, repo.AddReadBy(ctx, n.ID(), 8))
	// Re-adding the same reader must not duplicate the entry.
	require.NoError(t, repo.AddReadBy(ctx, n.ID(), 7))

	loaded, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{7, 8}, loaded.ReadBy())
}

func TestNotificationRepository_AddHiddenByLeavesReadByAlone(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createBroadcast(t, repo, 1, "shared row")

	require.NoError(t, repo.AddReadBy(ctx, n.ID(), 7))
	require.NoError(t, repo.AddHiddenBy(ctx, n.ID(), 7))
	require.NoError(t, repo.AddHiddenBy(ctx, n.ID(), 7))

	loaded, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{7}, loaded.ReadBy())
	assert.Equal(t, []uint{7}, loaded.HiddenBy())
}

func TestNotificationRepository_AddReadByMissingRow(t *testing.T) {
	db := setupNotificationDB(t)
	repo := NewNotificationRepository(db)

	err := repo.AddReadBy(context.Background(), 999, 7)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
