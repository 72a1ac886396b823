package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

func newBroadcast(t *testing.T, roles []uservo.Role, metadata vo.Metadata) *Notification {
	t.Helper()
	n, err := NewNotification(1, vo.NotificationTypeWarning, "title", "message", Params{
		Roles:    roles,
		Metadata: metadata,
	})
	require.NoError(t, err)
	return n
}

func TestVisibleTo_HiddenAlwaysWins(t *testing.T) {
	n := newBroadcast(t, nil, vo.Metadata{})
	viewer := Viewer{UserID: 7, Role: uservo.RoleManager}

	assert.True(t, n.VisibleTo(viewer))

	n.HideFor(7)
	assert.False(t, n.VisibleTo(viewer), "hidden notification must stay hidden")

	// Hiding beats even a direct user target.
	targeted, err := NewNotification(1, vo.NotificationTypeInfo, "t", "m", Params{UserID: uintPtr(7)})
	require.NoError(t, err)
	targeted.HideFor(7)
	assert.False(t, targeted.VisibleTo(viewer))
}

func TestVisibleTo_TargetedUser(t *testing.T) {
	n, err := NewNotification(1, vo.NotificationTypeInfo, "t", "m", Params{UserID: uintPtr(42)})
	require.NoError(t, err)

	assert.True(t, n.VisibleTo(Viewer{UserID: 42, Role: uservo.RoleGuard}))
	// A targeted notification is invisible to everyone else, whatever their
	// role.
	assert.False(t, n.VisibleTo(Viewer{UserID: 43, Role: uservo.RoleOwner}))
}

func TestVisibleTo_RoleMembership(t *testing.T) {
	n := newBroadcast(t, []uservo.Role{uservo.RoleManager, uservo.RoleEngineer}, vo.Metadata{})

	assert.True(t, n.VisibleTo(Viewer{UserID: 1, Role: uservo.RoleManager}))
	assert.True(t, n.VisibleTo(Viewer{UserID: 2, Role: uservo.RoleEngineer}))
	assert.False(t, n.VisibleTo(Viewer{UserID: 3, Role: uservo.RoleTechnician}))
	assert.False(t, n.VisibleTo(Viewer{UserID: 4, Role: uservo.RoleGuard}))
}

func TestVisibleTo_EmptyRoleListAddressesEveryone(t *testing.T) {
	n := newBroadcast(t, nil, vo.Metadata{})

	for _, role := range uservo.CompanyRoles() {
		assert.True(t, n.VisibleTo(Viewer{UserID: 1, Role: role}), "role %s", role)
	}
}

func TestVisibleTo_ScopeLimitedRoles(t *testing.T) {
	meta := vo.NewMetadata(uintPtr(10), nil, nil)
	n := newBroadcast(t, []uservo.Role{uservo.RoleManager, uservo.RoleGuard, uservo.RoleCustomer}, meta)

	// Staff roles ignore scoping entirely.
	assert.True(t, n.VisibleTo(Viewer{UserID: 1, Role: uservo.RoleManager}))

	// Guards and customers need the site in their assignment list.
	assert.True(t, n.VisibleTo(Viewer{UserID: 2, Role: uservo.RoleGuard, SiteIDs: []uint{10, 11}}))
	assert.False(t, n.VisibleTo(Viewer{UserID: 3, Role: uservo.RoleGuard, SiteIDs: []uint{11}}))
	assert.False(t, n.VisibleTo(Viewer{UserID: 4, Role: uservo.RoleCustomer}))
}

func TestVisibleTo_PlantScope(t *testing.T) {
	meta := vo.NewMetadata(nil, uintPtr(5), nil)
	n := newBroadcast(t, nil, meta)

	assert.True(t, n.VisibleTo(Viewer{UserID: 1, Role: uservo.RoleCustomer, PlantIDs: []uint{5}}))
	assert.False(t, n.VisibleTo(Viewer{UserID: 2, Role: uservo.RoleCustomer, PlantIDs: []uint{6}}))
}

func TestVisibleTo_NoScopeDefaultsToVisible(t *testing.T) {
	// A notification without site/plant fields is visible to scope-limited
	// roles even when they have no assignments at all.
	n := newBroadcast(t, nil, vo.Metadata{})

	assert.True(t, n.VisibleTo(Viewer{UserID: 1, Role: uservo.RoleGuard}))
	assert.True(t, n.VisibleTo(Viewer{UserID: 2, Role: uservo.RoleCustomer, SiteIDs: []uint{99}}))
}

func TestFilterVisible_DropsExpiredAndPreservesOrder(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	fresh := newBroadcast(t, nil, vo.Metadata{})
	expired, err := NewNotification(1, vo.NotificationTypeInfo, "t", "m", Params{ExpiresAt: &past})
	require.NoError(t, err)
	live, err := NewNotification(1, vo.NotificationTypeInfo, "t2", "m2", Params{ExpiresAt: &future})
	require.NoError(t, err)
	hidden := newBroadcast(t, nil, vo.Metadata{})
	hidden.HideFor(9)

	out := FilterVisible(
		[]*Notification{fresh, expired, live, hidden},
		Viewer{UserID: 9, Role: uservo.RoleManager},
		now,
	)

	require.Len(t, out, 2)
	assert.Same(t, fresh, out[0])
	assert.Same(t, live, out[1])
}

func TestMarkReadBy_Idempotent(t *testing.T) {
	n := newBroadcast(t, nil, vo.Metadata{})

	n.MarkReadBy(5)
	n.MarkReadBy(5)
	n.MarkReadBy(6)

	assert.Equal(t, []uint{5, 6}, n.ReadBy())
	assert.True(t, n.IsReadBy(5))
	assert.False(t, n.IsReadBy(7))
}

func TestHideFor_DoesNotTouchReadBy(t *testing.T) {
	n := newBroadcast(t, nil, vo.Metadata{})

	n.MarkReadBy(5)
	n.HideFor(5)
	n.HideFor(5)

	assert.Equal(t, []uint{5}, n.ReadBy())
	assert.Equal(t, []uint{5}, n.HiddenBy())
}
