package db

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"pfbms-server/src/models"
)

type typeCategorySum struct {
	Type     string
	Category string
	Total    decimal.Decimal
}

type monthTypeSum struct {
	Month string
	Type  string
	Total decimal.Decimal
}

// foldTotals reduces (type, category) groups into overall income and
// expense totals plus an expense-only category breakdown. Type comparison
// is case-insensitive; expense rows without a category land in
// "Uncategorized". The breakdown is ordered largest first.
func foldTotals(rows []typeCategorySum) (income, expense decimal.Decimal, breakdown []models.CategoryTotal) {
	breakdown = []models.CategoryTotal{}
	byCategory := make(map[string]decimal.Decimal)
	for _, row := range rows {
		switch {
		case strings.EqualFold(row.Type, "income"):
			income = income.Add(row.Total)
		case strings.EqualFold(row.Type, "expense"):
			expense = expense.Add(row.Total)
			name := row.Category
			if name == "" {
				name = "Uncategorized"
			}
			byCategory[name] = byCategory[name].Add(row.Total)
		}
	}

	for name, value := range byCategory {
		breakdown = append(breakdown, models.CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Value.Equal(breakdown[j].Value) {
			return breakdown[i].Value.GreaterThan(breakdown[j].Value)
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return income, expense, breakdown
}

// foldMonthly reduces (month, type) groups into one ordered point per
// calendar month. A month seen for only one type keeps the other side at
// zero.
func foldMonthly(rows []monthTypeSum) []models.MonthlyPoint {
	byMonth := make(map[string]*models.MonthlyPoint)
	var order []string
	for _, row := range rows {
		point, ok := byMonth[row.Month]
		if !ok {
			point = &models.MonthlyPoint{Month: row.Month}
			byMonth[row.Month] = point
			order = append(order, row.Month)
		}
		switch {
		case strings.EqualFold(row.Type, "income"):
			point.Income = point.Income.Add(row.Total)
		case strings.EqualFold(row.Type, "expense"):
			point.Expense = point.Expense.Add(row.Total)
		}
	}

	sort.Strings(order)
	series := make([]models.MonthlyPoint, 0, len(order))
	for _, month := range order {
		series = append(series, *byMonth[month])
	}
	return series
}

func queryTypeCategorySums(ctx context.Context, pool *pgxpool.Pool, userID string) ([]typeCategorySum, error) {
	query := `
		SELECT type, COALESCE(category, '') AS category, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND date >= NOW() - INTERVAL '12 months'
		GROUP BY type, category
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []typeCategorySum
	for rows.Next() {
		var s typeCategorySum
		if err := rows.Scan(&s.Type, &s.Category, &s.Total); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

func queryMonthTypeSums(ctx context.Context, pool *pgxpool.Pool, userID string) ([]monthTypeSum, error) {
	query := `
		SELECT TO_CHAR(DATE_TRUNC('month', date), 'YYYY-MM') AS month, type, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND date >= NOW() - INTERVAL '12 months'
		GROUP BY month, type
		ORDER BY month
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []monthTypeSum
	for rows.Next() {
		var s monthTypeSum
		if err := rows.Scan(&s.Month, &s.Type, &s.Total); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

func queryUnreadNotifications(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, content, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC
		LIMIT 10
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func queryRecentTransactions(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, date, category, description
		FROM transactions
		WHERE user_id = $1 AND date >= NOW() - INTERVAL '14 days'
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
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Category, &t.Description); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetDashboardSummary runs the five dashboard reads for one user and folds
// them into a single composite record. The reads are independent; a write
// landing between two of them is visible in one result and not the other,
// which is accepted for a dashboard.
func GetDashboardSummary(ctx context.Context, pool *pgxpool.Pool, userID string) (*models.DashboardSummary, error) {
	typeCategorySums, err := queryTypeCategorySums(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	monthTypeSums, err := queryMonthTypeSums(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	notifications, err := queryUnreadNotifications(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := GetAllReminders(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	recent, err := queryRecentTransactions(ctx, pool, userID)
	if err != nil {
		return nil, err
	}

	income, expense, breakdown := foldTotals(typeCategorySums)
	summary := &models.DashboardSummary{
		TotalIncome:        income,
		TotalExpense:       expense,
		Savings:            income.Sub(expense),
		Monthly:            foldMonthly(monthTypeSums),
		ExpenseByCategory:  breakdown,
		Notifications:      notifications,
		Reminders:          reminders,
		RecentTransactions: recent,
	}
	return summary, nil
}
