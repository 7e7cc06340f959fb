package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateNotification(ctx context.Context, pool *pgxpool.Pool, n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, content, type, is_read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, content, type, is_read, created_at
	`
	var created models.Notification
	err := pool.QueryRow(ctx, query, n.UserID, n.Content, n.Type, n.IsRead).
		Scan(&created.ID, &created.UserID, &created.Content, &created.Type, &created.IsRead, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetAllNotifications(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, content, type, is_read, created_at
		FROM notifications
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.Type, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// SetNotificationRead flips the read flag, typically to mark a
// notification as seen.
func SetNotificationRead(ctx context.Context, pool *pgxpool.Pool, userID string, id int64, isRead bool) (*models.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, content, type, is_read, created_at
	`
	var n models.Notification
	err := pool.QueryRow(ctx, query, isRead, id, userID).
		Scan(&n.ID, &n.UserID, &n.Content, &n.Type, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func DeleteNotification(ctx context.Context, pool *pgxpool.Pool, userID string, id int64) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
