package usecases

import (
	"context"
	"time"

	"github.com/heliox-inc/heliox/internal/domain/notification"
	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

type mockNotificationRepo struct {
	createFn     func(ctx context.Context, n *notification.Notification) error
	getByIDFn    func(ctx context.Context, id uint) (*notification.Notification, error)
	listRecentFn func(ctx context.Context, companyID uint, limit int) ([]*notification.Notification, error)
	addReadByFn  func(ctx context.Context, id uint, userID uint) error
	addHiddenFn  func(ctx context.Context, id uint, userID uint) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockNotificationRepo) ListRecentByCompany(ctx context.Context, companyID uint, limit int) ([]*notification.Notification, error) {
	return m.listRecentFn(ctx, companyID, limit)
}

func (m *mockNotificationRepo) AddReadBy(ctx context.Context, id uint, userID uint) error {
	if m.addReadByFn != nil {
		return m.addReadByFn(ctx, id, userID)
	}
	return nil
}

func (m *mockNotificationRepo) AddHiddenBy(ctx context.Context, id uint, userID uint) error {
	if m.addHiddenFn != nil {
		return m.addHiddenFn(ctx, id, userID)
	}
	return nil
}

type mockUserRepo struct {
	getByIDFn     func(ctx context.Context, id uint) (*user.User, error)
	listByRolesFn func(ctx context.Context, companyID uint, roles []uservo.Role) ([]*user.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) ListByCompanyAndRoles(ctx context.Context, companyID uint, roles []uservo.Role) ([]*user.User, error) {
	if m.listByRolesFn != nil {
		return m.listByRolesFn(ctx, companyID, roles)
	}
	return nil, nil
}

type mockCache struct {
	getFn    func(ctx context.Context, key string, dest interface{}) (bool, error)
	setFn    func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	deleteFn func(ctx context.Context, keys ...string) error
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key, dest)
	}
	return false, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, keys...)
	}
	return nil
}

type mockPush struct {
	sendFn func(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error
}

func (m *mockPush) Send(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
	if m.sendFn != nil {
		return m.sendFn(ctx, userIDs, title, body, data)
	}
	return nil
}

func makeTestUser(id, companyID uint, role uservo.Role, siteIDs, plantIDs []uint) *user.User {
	email, err := uservo.NewEmail("user@example.test")
	if err != nil {
		panic(err)
	}
	now := time.Now()
	u, err := user.ReconstructUser(id, companyID, email, "hash", "Test User", role, siteIDs, plantIDs, "active", now, now)
	if err != nil {
		panic(err)
	}
	return u
}
