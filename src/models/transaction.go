package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          string          `json:"transaction_id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
}

// TransactionUpdate enumerates the mutable fields of a transaction. Nil
// means "leave the stored value untouched".
type TransactionUpdate struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"-"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}
