package valueobjects

import "fmt"

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeInfo:    true,
	NotificationTypeSuccess: true,
	NotificationTypeWarning: true,
	NotificationTypeError:   true,
}

func NewNotificationType(value string) (NotificationType, error) {
	t := NotificationType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", value)
	}
	return t, nil
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}
