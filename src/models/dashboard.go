package models

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSummary is the composite payload behind /api/dashboard/summary.
// Its five underlying reads are independent; a row written between two of
// them may show up in one list and not another.
type DashboardSummary struct {
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpense       decimal.Decimal `json:"total_expense"`
	Savings            decimal.Decimal `json:"savings"`
	Monthly            []MonthlyPoint  `json:"monthly"`
	ExpenseByCategory  []CategoryTotal `json:"expense_by_category"`
	Notifications      []Notification  `json:"notifications"`
	Reminders          []Reminder      `json:"reminders"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
}
