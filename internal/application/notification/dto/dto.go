package dto

import "time"

// CreateNotificationRequest creates one shared notification document. Either
// UserID targets a single user, or Roles addresses a role set; leaving both
// empty broadcasts to every role in the company.
type CreateNotificationRequest struct {
	CompanyID uint                   `json:"company_id" validate:"required"`
	UserID    *uint                  `json:"user_id,omitempty"`
	Type      string                 `json:"type" validate:"required,oneof=info success warning error"`
	Title     string                 `json:"title" validate:"required,max=255"`
	Message   string                 `json:"message" validate:"required"`
	ActionURL *string                `json:"action_url,omitempty"`
	Roles     []string               `json:"roles,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ExpiresAt *time.Time             `json:"expires_at,omitempty"`
}

// NotificationResponse is one feed entry as seen by a specific user: IsRead
// reflects that user's membership in the document's readBy set.
type NotificationResponse struct {
	ID        uint                   `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	ActionURL *string                `json:"action_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

type ListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int                     `json:"total"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
