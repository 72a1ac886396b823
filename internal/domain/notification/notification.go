package notification

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/heliox-inc/heliox/internal/domain/notification/valueobjects"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

// Notification is one shared document per event. There is no per-recipient
// fan-out at write time: every eligible reader sees the same row, and the
// per-user read/hide state lives in the readBy/hiddenBy sets.
type Notification struct {
	id        uint
	companyID uint
	userID    *uint // nil means role broadcast
	notifType vo.NotificationType
	title     string
	message   string
	actionURL *string
	roles     []uservo.Role
	metadata  vo.Metadata
	readBy    []uint
	hiddenBy  []uint
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
	events    []interface{}
	mu        sync.RWMutex
}

// Params carries the optional fields of a new notification.
type Params struct {
	UserID    *uint
	ActionURL *string
	Roles     []uservo.Role
	Metadata  vo.Metadata
	ExpiresAt *time.Time
}

func NewNotification(
	companyID uint,
	notifType vo.NotificationType,
	title string,
	message string,
	params Params,
) (*Notification, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	for _, r := range params.Roles {
		if !r.IsValid() {
			return nil, fmt.Errorf("invalid role in role list: %s", r)
		}
	}

	now := time.Now()
	n := &Notification{
		companyID: companyID,
		userID:    params.UserID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: params.ActionURL,
		roles:     params.Roles,
		metadata:  params.Metadata,
		readBy:    []uint{},
		expiresAt: params.ExpiresAt,
		createdAt: now,
		updatedAt: now,
		events:    []interface{}{},
	}

	n.recordEventUnsafe(CreatedEvent{
		CompanyID: companyID,
		UserID:    params.UserID,
		Type:      notifType,
		CreatedAt: now,
	})

	return n, nil
}

func ReconstructNotification(
	id uint,
	companyID uint,
	userID *uint,
	notifType vo.NotificationType,
	title string,
	message string,
	actionURL *string,
	roles []uservo.Role,
	metadata vo.Metadata,
	readBy, hiddenBy []uint,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &Notification{
		id:        id,
		companyID: companyID,
		userID:    userID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		roles:     roles,
		metadata:  metadata,
		readBy:    readBy,
		hiddenBy:  hiddenBy,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    []interface{}{},
	}, nil
}

func (n *Notification) ID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Notification) CompanyID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.companyID
}

func (n *Notification) UserID() *uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.notifType
}

func (n *Notification) Title() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.title
}

func (n *Notification) Message() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.message
}

func (n *Notification) ActionURL() *string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.actionURL
}

func (n *Notification) Roles() []uservo.Role {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.roles
}

func (n *Notification) Metadata() vo.Metadata {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.metadata
}

func (n *Notification) ReadBy() []uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]uint, len(n.readBy))
	copy(out, n.readBy)
	return out
}

func (n *Notification) HiddenBy() []uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]uint, len(n.hiddenBy))
	copy(out, n.hiddenBy)
	return out
}

func (n *Notification) ExpiresAt() *time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.expiresAt
}

func (n *Notification) CreatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsBroadcast reports whether the notification targets a role set rather
// than a single user.
func (n *Notification) IsBroadcast() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.userID == nil
}

func (n *Notification) IsExpired(now time.Time) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.expiresAt != nil && now.After(*n.expiresAt)
}

func (n *Notification) IsReadBy(userID uint) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return containsID(n.readBy, userID)
}

func (n *Notification) IsHiddenFor(userID uint) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return containsID(n.hiddenBy, userID)
}

// MarkReadBy adds the user to the readBy set. Reading is per-user: it never
// affects what other eligible readers see.
func (n *Notification) MarkReadBy(userID uint) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if containsID(n.readBy, userID) {
		return
	}
	n.readBy = append(n.readBy, userID)
	n.updatedAt = time.Now()
}

// HideFor adds the user to the hiddenBy set. The row survives; hiding only
// drops the notification from that user's filtered feed. readBy is not
// touched.
func (n *Notification) HideFor(userID uint) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if containsID(n.hiddenBy, userID) {
		return
	}
	n.hiddenBy = append(n.hiddenBy, userID)
	n.updatedAt = time.Now()
}

func (n *Notification) recordEventUnsafe(event interface{}) {
	n.events = append(n.events, event)
}

func (n *Notification) GetEvents() []interface{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	events := make([]interface{}, len(n.events))
	copy(events, n.events)
	n.events = []interface{}{}
	return events
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
