package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, type, amount, date, category, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, type, amount, date, category, description
	`
	var created models.Transaction
	err := pool.QueryRow(ctx, query, t.ID, t.UserID, t.Type, t.Amount, t.Date, t.Category, t.Description).
		Scan(&created.ID, &created.UserID, &created.Type, &created.Amount, &created.Date, &created.Category, &created.Description)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, date, category, description
		FROM transactions
		WHERE id = $1
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Category, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetAllTransactions lists every transaction, optionally narrowed to one
// user when userID is non-empty.
func GetAllTransactions(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, date, category, description
		FROM transactions
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Category, &t.Description)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id string, upd *models.TransactionUpdate) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET type        = COALESCE($1, type),
		    amount      = COALESCE($2, amount),
		    date        = COALESCE($3, date),
		    category    = COALESCE($4, category),
		    description = COALESCE($5, description)
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, type, amount, date, category, description
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, upd.Type, upd.Amount, upd.Date, upd.Category, upd.Description, id, userID).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Category, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
