package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Investment struct {
	ID           string           `json:"investment_id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	PurchaseDate time.Time        `json:"purchase_date"`
	CurrentValue *decimal.Decimal `json:"current_value"`
}

type InvestmentUpdate struct {
	Name         *string          `json:"name"`
	Type         *string          `json:"type"`
	Amount       *decimal.Decimal `json:"amount"`
	PurchaseDate *time.Time       `json:"-"`
	CurrentValue *decimal.Decimal `json:"current_value"`
}
