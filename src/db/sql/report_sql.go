package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

// decodeReportData turns the stored text payload back into JSON. Malformed
// or missing payloads degrade to an empty object instead of failing the
// read.
func decodeReportData(stored *string) json.RawMessage {
	if stored == nil || !json.Valid([]byte(*stored)) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(*stored)
}

func CreateReport(ctx context.Context, pool *pgxpool.Pool, rep *models.Report) (*models.Report, error) {
	query := `
		INSERT INTO reports (id, user_id, type, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, data, created_at
	`
	var created models.Report
	var stored *string
	err := pool.QueryRow(ctx, query, rep.ID, rep.UserID, rep.Type, string(rep.Data)).
		Scan(&created.ID, &created.UserID, &created.Type, &stored, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	created.Data = decodeReportData(stored)
	return &created, nil
}

func GetReportByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Report, error) {
	query := `
		SELECT id, user_id, type, data, created_at
		FROM reports
		WHERE id = $1
	`
	var rep models.Report
	var stored *string
	err := pool.QueryRow(ctx, query, id).
		Scan(&rep.ID, &rep.UserID, &rep.Type, &stored, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rep.Data = decodeReportData(stored)
	return &rep, nil
}

func GetAllReports(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Report, error) {
	query := `
		SELECT id, user_id, type, data, created_at
		FROM reports
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var rep models.Report
		var stored *string
		err := rows.Scan(&rep.ID, &rep.UserID, &rep.Type, &stored, &rep.CreatedAt)
		if err != nil {
			return nil, err
		}
		rep.Data = decodeReportData(stored)
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func DeleteReport(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM reports WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
