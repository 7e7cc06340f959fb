package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreatePreference(ctx context.Context, pool *pgxpool.Pool, p *models.Preference) (*models.Preference, error) {
	query := `
		INSERT INTO preferences (user_id, currency, theme, notifications)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, currency, theme, notifications
	`
	var created models.Preference
	err := pool.QueryRow(ctx, query, p.UserID, p.Currency, p.Theme, p.Notifications).
		Scan(&created.UserID, &created.Currency, &created.Theme, &created.Notifications)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetPreferenceByUserID(ctx context.Context, pool *pgxpool.Pool, userID string) (*models.Preference, error) {
	query := `
		SELECT user_id, currency, theme, notifications
		FROM preferences
		WHERE user_id = $1
	`
	var p models.Preference
	err := pool.QueryRow(ctx, query, userID).
		Scan(&p.UserID, &p.Currency, &p.Theme, &p.Notifications)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePreference requires a pre-existing row; creation goes through
// CreatePreference only.
func UpdatePreference(ctx context.Context, pool *pgxpool.Pool, userID string, upd *models.PreferenceUpdate) (*models.Preference, error) {
	query := `
		UPDATE preferences
		SET currency      = COALESCE($1, currency),
		    theme         = COALESCE($2, theme),
		    notifications = COALESCE($3, notifications)
		WHERE user_id = $4
		RETURNING user_id, currency, theme, notifications
	`
	var p models.Preference
	err := pool.QueryRow(ctx, query, upd.Currency, upd.Theme, upd.Notifications, userID).
		Scan(&p.UserID, &p.Currency, &p.Theme, &p.Notifications)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
