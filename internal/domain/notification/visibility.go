package notification

import (
	"time"

	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/utils/setutil"
)

// Viewer is the identity a feed is filtered for.
type Viewer struct {
	UserID   uint
	Role     uservo.Role
	SiteIDs  []uint
	PlantIDs []uint
}

// VisibleTo decides whether the viewer should see this notification. The
// checks run in a fixed order:
//
//  1. a viewer who hid the notification never sees it again;
//  2. a targeted notification is visible only to its target user; a
//     broadcast passes to the role check;
//  3. when a role list is present the viewer's role must be in it;
//  4. scope-limited roles (guard, customer) additionally require that the
//     metadata's site/plant scope, when present, intersects the viewer's
//     assignments. A notification without scoping fields is visible to
//     everyone who passed the earlier checks, assignments or not.
func (n *Notification) VisibleTo(viewer Viewer) bool {
	if n.IsHiddenFor(viewer.UserID) {
		return false
	}

	if target := n.UserID(); target != nil {
		return *target == viewer.UserID
	}

	if !n.addressesRole(viewer.Role) {
		return false
	}

	if !viewer.Role.IsScopeLimited() {
		return true
	}

	meta := n.Metadata()
	if siteID := meta.SiteID(); siteID != nil {
		if !setutil.NewUintSetFrom(viewer.SiteIDs).Has(*siteID) {
			return false
		}
	}
	if plantID := meta.PlantID(); plantID != nil {
		if !setutil.NewUintSetFrom(viewer.PlantIDs).Has(*plantID) {
			return false
		}
	}
	return true
}

// addressesRole is true when the role list is empty (visible to all roles)
// or contains the viewer's role.
func (n *Notification) addressesRole(role uservo.Role) bool {
	roles := n.Roles()
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// FilterVisible applies VisibleTo plus expiry across a feed slice,
// preserving order.
func FilterVisible(list []*Notification, viewer Viewer, now time.Time) []*Notification {
	out := make([]*Notification, 0, len(list))
	for _, n := range list {
		if n.IsExpired(now) {
			continue
		}
		if n.VisibleTo(viewer) {
			out = append(out, n)
		}
	}
	return out
}
