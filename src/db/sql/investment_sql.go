package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateInvestment(ctx context.Context, pool *pgxpool.Pool, inv *models.Investment) (*models.Investment, error) {
	query := `
		INSERT INTO investments (id, user_id, name, type, amount, purchase_date, current_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, type, amount, purchase_date, current_value
	`
	var created models.Investment
	err := pool.QueryRow(ctx, query, inv.ID, inv.UserID, inv.Name, inv.Type, inv.Amount, inv.PurchaseDate, inv.CurrentValue).
		Scan(&created.ID, &created.UserID, &created.Name, &created.Type, &created.Amount, &created.PurchaseDate, &created.CurrentValue)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetInvestmentByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Investment, error) {
	query := `
		SELECT id, user_id, name, type, amount, purchase_date, current_value
		FROM investments
		WHERE id = $1
	`
	var inv models.Investment
	err := pool.QueryRow(ctx, query, id).
		Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Amount, &inv.PurchaseDate, &inv.CurrentValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func GetAllInvestments(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, name, type, amount, purchase_date, current_value
		FROM investments
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY purchase_date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Amount, &inv.PurchaseDate, &inv.CurrentValue)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func UpdateInvestment(ctx context.Context, pool *pgxpool.Pool, userID, id string, upd *models.InvestmentUpdate) (*models.Investment, error) {
	query := `
		UPDATE investments
		SET name          = COALESCE($1, name),
		    type          = COALESCE($2, type),
		    amount        = COALESCE($3, amount),
		    purchase_date = COALESCE($4, purchase_date),
		    current_value = COALESCE($5, current_value)
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, name, type, amount, purchase_date, current_value
	`
	var inv models.Investment
	err := pool.QueryRow(ctx, query, upd.Name, upd.Type, upd.Amount, upd.PurchaseDate, upd.CurrentValue, id, userID).
		Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Amount, &inv.PurchaseDate, &inv.CurrentValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func DeleteInvestment(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM investments WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
