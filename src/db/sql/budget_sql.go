package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, b *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (id, user_id, category, amount, period, start_date, end_date, is_exceeded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, category, amount, period, start_date, end_date, is_exceeded
	`
	var created models.Budget
	err := pool.QueryRow(ctx, query, b.ID, b.UserID, b.Category, b.Amount, b.Period, b.StartDate, b.EndDate, b.IsExceeded).
		Scan(&created.ID, &created.UserID, &created.Category, &created.Amount, &created.Period, &created.StartDate, &created.EndDate, &created.IsExceeded)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, period, start_date, end_date, is_exceeded
		FROM budgets
		WHERE id = $1
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.StartDate, &b.EndDate, &b.IsExceeded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func GetAllBudgets(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, period, start_date, end_date, is_exceeded
		FROM budgets
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY start_date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.StartDate, &b.EndDate, &b.IsExceeded)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, userID, id string, upd *models.BudgetUpdate) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET category    = COALESCE($1, category),
		    amount      = COALESCE($2, amount),
		    period      = COALESCE($3, period),
		    start_date  = COALESCE($4, start_date),
		    end_date    = COALESCE($5, end_date),
		    is_exceeded = COALESCE($6, is_exceeded)
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, category, amount, period, start_date, end_date, is_exceeded
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, upd.Category, upd.Amount, upd.Period, upd.StartDate, upd.EndDate, upd.IsExceeded, id, userID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.StartDate, &b.EndDate, &b.IsExceeded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
