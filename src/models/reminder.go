package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reminder struct {
	ID          string          `json:"reminder_id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Recurring   bool            `json:"recurring"`
}

type ReminderUpdate struct {
	Title       *string          `json:"title"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"-"`
	Recurring   *bool            `json:"recurring"`
}
