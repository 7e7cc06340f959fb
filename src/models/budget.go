package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID         string          `json:"budget_id"`
	UserID     string          `json:"user_id"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	IsExceeded bool            `json:"is_exceeded"`
}

type BudgetUpdate struct {
	Category   *string          `json:"category"`
	Amount     *decimal.Decimal `json:"amount"`
	Period     *string          `json:"period"`
	StartDate  *time.Time       `json:"-"`
	EndDate    *time.Time       `json:"-"`
	IsExceeded *bool            `json:"is_exceeded"`
}
