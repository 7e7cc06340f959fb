package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/models"
)

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, g *models.Goal) (*models.Goal, error) {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, target_amount, current_amount, deadline
	`
	var created models.Goal
	err := pool.QueryRow(ctx, query, g.ID, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline).
		Scan(&created.ID, &created.UserID, &created.Name, &created.TargetAmount, &created.CurrentAmount, &created.Deadline)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func GetGoalByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline
		FROM goals
		WHERE id = $1
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, id).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func GetAllGoals(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline
		FROM goals
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, userID, id string, upd *models.GoalUpdate) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET name           = COALESCE($1, name),
		    target_amount  = COALESCE($2, target_amount),
		    current_amount = COALESCE($3, current_amount),
		    deadline       = COALESCE($4, deadline)
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, target_amount, current_amount, deadline
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, upd.Name, upd.TargetAmount, upd.CurrentAmount, upd.Deadline, id, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
