package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"pfbms-server/src/models"
)

// Tests in this file run against a real database and skip when
// DATABASE_URL is not set. The schema from schema.sql must be applied.
func livePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("building pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("pinging database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func seedLiveUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	ctx := context.Background()
	user, err := CreateUser(ctx, pool, &models.User{
		ID:           uuid.NewString(),
		Name:         "Live Test",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: []byte("not-a-real-hash"),
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	t.Cleanup(func() {
		_ = DeleteUser(context.Background(), pool, user.ID)
	})
	return user
}

func strPtr(s string) *string { return &s }

func TestUpdateTransactionPartialLive(t *testing.T) {
	pool := livePool(t)
	user := seedLiveUser(t, pool)
	ctx := context.Background()

	created, err := CreateTransaction(ctx, pool, &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Type:        "expense",
		Amount:      dec("125.50"),
		Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Category:    strPtr("Groceries"),
		Description: strPtr("weekly shop"),
	})
	if err != nil {
		t.Fatalf("creating transaction: %v", err)
	}

	newAmount := dec("99.99")
	updated, err := UpdateTransaction(ctx, pool, user.ID, created.ID, &models.TransactionUpdate{
		Amount: &newAmount,
	})
	if err != nil {
		t.Fatalf("updating transaction: %v", err)
	}

	if !updated.Amount.Equal(newAmount) {
		t.Errorf("amount = %s, want %s", updated.Amount, newAmount)
	}
	if updated.Type != created.Type {
		t.Errorf("type = %s, changed by an update that never named it", updated.Type)
	}
	if updated.Category == nil || *updated.Category != "Groceries" {
		t.Errorf("category = %v, changed by an update that never named it", updated.Category)
	}
	if updated.Description == nil || *updated.Description != "weekly shop" {
		t.Errorf("description = %v, changed by an update that never named it", updated.Description)
	}
	if !updated.Date.Equal(created.Date) {
		t.Errorf("date = %v, changed by an update that never named it", updated.Date)
	}

	// A different owner must not be able to reach the row.
	if _, err := UpdateTransaction(ctx, pool, uuid.NewString(), created.ID, &models.TransactionUpdate{Amount: &newAmount}); err != ErrNotFound {
		t.Errorf("update as another user = %v, want ErrNotFound", err)
	}
}

func TestUpdateGoalPartialLive(t *testing.T) {
	pool := livePool(t)
	user := seedLiveUser(t, pool)
	ctx := context.Background()

	deadline := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := CreateGoal(ctx, pool, &models.Goal{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Name:         "Emergency fund",
		TargetAmount: dec("10000"),
		Deadline:     &deadline,
	})
	if err != nil {
		t.Fatalf("creating goal: %v", err)
	}

	newCurrent := dec("2500")
	updated, err := UpdateGoal(ctx, pool, user.ID, created.ID, &models.GoalUpdate{
		CurrentAmount: &newCurrent,
	})
	if err != nil {
		t.Fatalf("updating goal: %v", err)
	}

	if !updated.CurrentAmount.Equal(newCurrent) {
		t.Errorf("current_amount = %s, want %s", updated.CurrentAmount, newCurrent)
	}
	if updated.Name != "Emergency fund" {
		t.Errorf("name = %s, changed by an update that never named it", updated.Name)
	}
	if !updated.TargetAmount.Equal(created.TargetAmount) {
		t.Errorf("target_amount = %s, changed by an update that never named it", updated.TargetAmount)
	}
	if updated.Deadline == nil || !updated.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, changed by an update that never named it", updated.Deadline)
	}
}

func TestDeleteMissingRowsLive(t *testing.T) {
	pool := livePool(t)
	user := seedLiveUser(t, pool)
	ctx := context.Background()
	missing := uuid.NewString()

	if err := DeleteTransaction(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteTransaction = %v, want ErrNotFound", err)
	}
	if err := DeleteBudget(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteBudget = %v, want ErrNotFound", err)
	}
	if err := DeleteInvestment(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteInvestment = %v, want ErrNotFound", err)
	}
	if err := DeleteGoal(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteGoal = %v, want ErrNotFound", err)
	}
	if err := DeleteReminder(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteReminder = %v, want ErrNotFound", err)
	}
	if err := DeleteReport(ctx, pool, user.ID, missing); err != ErrNotFound {
		t.Errorf("DeleteReport = %v, want ErrNotFound", err)
	}
	if err := DeleteNotification(ctx, pool, user.ID, -1); err != ErrNotFound {
		t.Errorf("DeleteNotification = %v, want ErrNotFound", err)
	}
	if err := DeleteUser(ctx, pool, missing); err != ErrNotFound {
		t.Errorf("DeleteUser = %v, want ErrNotFound", err)
	}
}
