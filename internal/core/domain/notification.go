package domain

import "time"

// NotificationType labels the event an in-app notification reports.
type NotificationType string

const (
	NotificationBadgeAwarded       NotificationType = "BADGE_AWARDED"
	NotificationChallengeSucceeded NotificationType = "CHALLENGE_SUCCEEDED"
	NotificationChallengeFailed    NotificationType = "CHALLENGE_FAILED"
	NotificationRecurringSpawned   NotificationType = "RECURRING_SPAWNED"
)

// Notification is an in-app notification record. Delivery transport (push,
// email) is outside this service; clients poll and mark read.
type Notification struct {
	NotificationID string            `json:"notificationID"` // Primary Key (e.g., UUID)
	UserID         string            `json:"userID"`         // FK -> users.user_id (Not Null)
	Type           NotificationType  `json:"type"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	Data           map[string]string `json:"data,omitempty"` // Small key/value payload for the client
	Read           bool              `json:"read"`
	CreatedAt      time.Time         `json:"createdAt"`
}
