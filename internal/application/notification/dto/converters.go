package dto

import "github.com/heliox-inc/heliox/internal/domain/notification"

// ToNotificationResponse renders the shared document for one viewer.
func ToNotificationResponse(n *notification.Notification, viewerID uint) *NotificationResponse {
	metadata := n.Metadata().ToMap()
	if len(metadata) == 0 {
		metadata = nil
	}
	return &NotificationResponse{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		ActionURL: n.ActionURL(),
		Metadata:  metadata,
		IsRead:    n.IsReadBy(viewerID),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationResponses(list []*notification.Notification, viewerID uint) []*NotificationResponse {
	out := make([]*NotificationResponse, len(list))
	for i, n := range list {
		out[i] = ToNotificationResponse(n, viewerID)
	}
	return out
}
