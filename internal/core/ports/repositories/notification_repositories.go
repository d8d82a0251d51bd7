package repositories

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// NotificationReader defines read operations for in-app notifications.
type NotificationReader interface {
	// ListNotificationsByUser retrieves the user's notifications, newest
	// first, optionally limited to unread ones.
	ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for in-app notifications.
type NotificationWriter interface {
	// SaveNotification persists a notification record.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead flags a single notification as read.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error

	// MarkAllNotificationsRead flags all of the user's notifications as read.
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
