package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// NotificationResponse defines the data returned for an in-app notification.
type NotificationResponse struct {
	NotificationID string                  `json:"notificationID"`
	Type           domain.NotificationType `json:"type"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	Data           map[string]string       `json:"data,omitempty"`
	Read           bool                    `json:"read"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly,default=false"`
}

// ListNotificationsResponse wraps the list of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Data:           n.Data,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a slice of domain notifications.
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	out := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		out[i] = ToNotificationResponse(&notifications[i])
	}
	return ListNotificationsResponse{Notifications: out}
}
