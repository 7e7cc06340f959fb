package util

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

var seedCategories = []string{"Groceries", "Rent", "Transport", "Entertainment", "Utilities", "Health"}

// Seed fills the database with generated demo accounts, each carrying a
// year of transactions plus budgets, goals, and reminders. Development
// aid only.
func Seed(ctx context.Context, pool *pgxpool.Pool, numUsers int) error {
	for i := 0; i < numUsers; i++ {
		password, err := bcrypt.GenerateFromPassword([]byte("P@ssw0rd1"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user, err := db.CreateUser(ctx, pool, &models.User{
			ID:           uuid.NewString(),
			Name:         gofakeit.Name(),
			Email:        gofakeit.Email(),
			PasswordHash: password,
		})
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		if err := seedTransactions(ctx, pool, user.ID, 40); err != nil {
			return err
		}
		if err := seedBudgets(ctx, pool, user.ID); err != nil {
			return err
		}
		if err := seedGoalsAndReminders(ctx, pool, user.ID); err != nil {
			return err
		}

		log.Printf("INFO: Seeded user %s (%s)", user.Email, user.ID)
	}
	return nil
}

func seedTransactions(ctx context.Context, pool *pgxpool.Pool, userID string, count int) error {
	for i := 0; i < count; i++ {
		kind := "expense"
		if rand.Intn(4) == 0 {
			kind = "income"
		}
		category := seedCategories[rand.Intn(len(seedCategories))]
		description := gofakeit.Sentence(4)
		_, err := db.CreateTransaction(ctx, pool, &models.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        kind,
			Amount:      decimal.NewFromFloat(gofakeit.Price(5, 2000)),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(365)),
			Category:    &category,
			Description: &description,
		})
		if err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}
	return nil
}

func seedBudgets(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	now := time.Now()
	for _, category := range seedCategories[:3] {
		_, err := db.CreateBudget(ctx, pool, &models.Budget{
			ID:        uuid.NewString(),
			UserID:    userID,
			Category:  category,
			Amount:    decimal.NewFromFloat(gofakeit.Price(200, 1500)),
			Period:    "monthly",
			StartDate: now.AddDate(0, 0, -now.Day()+1),
			EndDate:   now.AddDate(0, 1, -now.Day()),
		})
		if err != nil {
			return fmt.Errorf("seed budget: %w", err)
		}
	}
	return nil
}

func seedGoalsAndReminders(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	deadline := time.Now().AddDate(1, 0, 0)
	_, err := db.CreateGoal(ctx, pool, &models.Goal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          gofakeit.BuzzWord() + " fund",
		TargetAmount:  decimal.NewFromFloat(gofakeit.Price(1000, 20000)),
		CurrentAmount: decimal.Zero,
		Deadline:      &deadline,
	})
	if err != nil {
		return fmt.Errorf("seed goal: %w", err)
	}

	category := seedCategories[rand.Intn(len(seedCategories))]
	description := gofakeit.Sentence(3)
	_, err = db.CreateReminder(ctx, pool, &models.Reminder{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       "Pay " + category,
		Category:    &category,
		Description: &description,
		Amount:      decimal.NewFromFloat(gofakeit.Price(10, 500)),
		DueDate:     time.Now().AddDate(0, 0, rand.Intn(28)+1),
		Recurring:   rand.Intn(2) == 0,
	})
	if err != nil {
		return fmt.Errorf("seed reminder: %w", err)
	}
	return nil
}
