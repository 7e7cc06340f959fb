package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateReminder(ctx context.Context, pool *pgxpool.Pool, rem *models.Reminder) (*models.Reminder, error) {
	query := `
		INSERT INTO reminders (id, user_id, title, category, description, amount, due_date, recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, title, category, description, amount, due_date, recurring
	`
	var created models.Reminder
	err := pool.QueryRow(ctx, query, rem.ID, rem.UserID, rem.Title, rem.Category, rem.Description, rem.Amount, rem.DueDate, rem.Recurring).
		Scan(&created.ID, &created.UserID, &created.Title, &created.Category, &created.Description, &created.Amount, &created.DueDate, &created.Recurring)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetReminderByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Reminder, error) {
	query := `
		SELECT id, user_id, title, category, description, amount, due_date, recurring
		FROM reminders
		WHERE id = $1
	`
	var rem models.Reminder
	err := pool.QueryRow(ctx, query, id).
		Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Category, &rem.Description, &rem.Amount, &rem.DueDate, &rem.Recurring)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rem, nil
}

func GetAllReminders(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Reminder, error) {
	query := `
		SELECT id, user_id, title, category, description, amount, due_date, recurring
		FROM reminders
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY due_date
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		err := rows.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Category, &rem.Description, &rem.Amount, &rem.DueDate, &rem.Recurring)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func UpdateReminder(ctx context.Context, pool *pgxpool.Pool, userID, id string, upd *models.ReminderUpdate) (*models.Reminder, error) {
	query := `
		UPDATE reminders
		SET title       = COALESCE($1, title),
		    category    = COALESCE($2, category),
		    description = COALESCE($3, description),
		    amount      = COALESCE($4, amount),
		    due_date    = COALESCE($5, due_date),
		    recurring   = COALESCE($6, recurring)
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, title, category, description, amount, due_date, recurring
	`
	var rem models.Reminder
	err := pool.QueryRow(ctx, query, upd.Title, upd.Category, upd.Description, upd.Amount, upd.DueDate, upd.Recurring, id, userID).
		Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Category, &rem.Description, &rem.Amount, &rem.DueDate, &rem.Recurring)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rem, nil
}

func DeleteReminder(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
