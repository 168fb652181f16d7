package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mlbb-fantasy/api/internal/domain/notification"
)

type notificationTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

func notificationFromRow(row notificationTableModel) notification.Notification {
	return notification.Notification{
		ID:        row.PublicID,
		Title:     row.Title,
		Message:   row.Message,
		Kind:      notification.Kind(row.Kind),
		CreatedAt: row.CreatedAt,
	}
}

type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) List(ctx context.Context, limit int) ([]notification.Notification, error) {
	const query = `SELECT id, public_id, title, message, kind, created_at
FROM notifications
ORDER BY created_at DESC
LIMIT $1`

	var rows []notificationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]notification.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notificationFromRow(row))
	}
	return out, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	const query = `INSERT INTO notifications (public_id, title, message, kind, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, n.ID, n.Title, n.Message, string(n.Kind), n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}
