package services

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// NotificationSink is the narrow emit-only port other services depend on.
// Emission is fire-and-forget from the caller's perspective: a failed emit
// is logged, never propagated into the triggering operation.
type NotificationSink interface {
	Emit(ctx context.Context, userID string, t domain.NotificationType, title, message string, data map[string]string)
}

// NotificationSvcFacade combines the sink with the client-facing inbox.
type NotificationSvcFacade interface {
	NotificationSink

	// ListNotifications retrieves the user's notifications, newest first.
	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead flags all of the user's notifications as read.
	MarkAllRead(ctx context.Context, userID string) error
}
