package models

import "time"

// Notification represents an in-app notification row. Data is a small
// key/value payload stored as JSONB.
type Notification struct {
	NotificationID   string            `db:"notification_id"`
	UserID           string            `db:"user_id"`
	NotificationType string            `db:"notification_type"`
	Title            string            `db:"title"`
	Message          string            `db:"message"`
	Data             map[string]string `db:"data"`
	Read             bool              `db:"read"`
	CreatedAt        time.Time         `db:"created_at"`
}
