package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the in-app notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Emit persists a notification. A failed emit is logged and swallowed so
// the operation that triggered it never fails on account of a notification.
func (s *notificationService) Emit(ctx context.Context, userID string, t domain.NotificationType, title, message string, data map[string]string) {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           t,
		Title:          title,
		Message:        message,
		Data:           data,
		Read:           false,
		CreatedAt:      time.Now(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to emit notification",
			slog.String("user_id", userID),
			slog.String("type", string(t)))
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, params.UnreadOnly)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListNotificationsResponse(notifications)
	return &resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkNotificationRead(ctx, userID, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
}
