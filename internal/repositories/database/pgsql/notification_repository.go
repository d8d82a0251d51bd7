package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_backend/internal/models"
	"github.com/pocketfin/pocketfin_backend/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
		INSERT INTO notifications (notification_id, user_id, notification_type, title, message, data, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.UserID,
		m.NotificationType,
		m.Title,
		m.Message,
		m.Data,
		m.Read,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, notification_type, title, message, data, read, created_at
		FROM notifications
		WHERE user_id = $1
	`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	ms := []models.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID,
			&m.UserID,
			&m.NotificationType,
			&m.Title,
			&m.Message,
			&m.Data,
			&m.Read,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}

	return mapping.ToDomainNotificationSlice(ms), nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND user_id = $2;`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE;`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
