package mapping

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:   d.NotificationID,
		UserID:           d.UserID,
		NotificationType: string(d.Type),
		Title:            d.Title,
		Message:          d.Message,
		Data:             d.Data,
		Read:             d.Read,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           domain.NotificationType(m.NotificationType),
		Title:          m.Title,
		Message:        m.Message,
		Data:           m.Data,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
