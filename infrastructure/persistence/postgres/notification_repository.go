package postgres

import (
	"context"

	"opsboard-backend/domain/core/entities"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NotificationRepository is the PostgreSQL implementation of
// ports.NotificationRepository.
type NotificationRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewNotificationRepository creates a notification repository over a shared
// connection pool.
func NewNotificationRepository(pool *pgxpool.Pool, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create persists a new notification.
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	const query = `
		INSERT INTO notifications (id, user_id, title, body, read, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.Title,
		notification.Body,
		notification.Read,
		notification.CreatedAt,
	)
	if err != nil {
		return apperrors.NewDatabaseError("create notification", err)
	}
	return nil
}

// ListByUser retrieves a user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entities.Notification, error) {
	const query = `
		SELECT id, user_id, title, COALESCE(body, ''), read, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR NOT read)
		ORDER BY created_at DESC
		LIMIT 200`

	rows, err := r.pool.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list notifications", err)
	}
	defer rows.Close()

	var notifications []*entities.Notification
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, apperrors.NewDatabaseError("scan notification", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list notifications", err)
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read. Marking an already
// read notification is not an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	const query = `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return apperrors.NewDatabaseError("mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("notification")
	}
	return nil
}
