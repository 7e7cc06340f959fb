package db

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFoldTotals(t *testing.T) {
	rows := []typeCategorySum{
		{Type: "income", Category: "", Total: dec("5000")},
		{Type: "Income", Category: "Bonus", Total: dec("250.50")},
		{Type: "expense", Category: "Groceries", Total: dec("300")},
		{Type: "EXPENSE", Category: "Groceries", Total: dec("120.25")},
		{Type: "expense", Category: "", Total: dec("79.75")},
		{Type: "transfer", Category: "Other", Total: dec("999")},
	}

	income, expense, breakdown := foldTotals(rows)

	if !income.Equal(dec("5250.50")) {
		t.Errorf("income = %s, want 5250.50", income)
	}
	if !expense.Equal(dec("500")) {
		t.Errorf("expense = %s, want 500", expense)
	}

	if len(breakdown) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(breakdown))
	}
	if breakdown[0].Name != "Groceries" || !breakdown[0].Value.Equal(dec("420.25")) {
		t.Errorf("breakdown[0] = %s %s, want Groceries 420.25", breakdown[0].Name, breakdown[0].Value)
	}
	if breakdown[1].Name != "Uncategorized" || !breakdown[1].Value.Equal(dec("79.75")) {
		t.Errorf("breakdown[1] = %s %s, want Uncategorized 79.75", breakdown[1].Name, breakdown[1].Value)
	}

	var sum decimal.Decimal
	for _, c := range breakdown {
		sum = sum.Add(c.Value)
	}
	if !sum.Equal(expense) {
		t.Errorf("breakdown sum = %s, want expense total %s", sum, expense)
	}
}

func TestFoldTotalsEmpty(t *testing.T) {
	income, expense, breakdown := foldTotals(nil)
	if !income.IsZero() || !expense.IsZero() {
		t.Errorf("totals = %s/%s, want 0/0", income, expense)
	}
	if breakdown == nil {
		t.Fatal("breakdown is nil, want empty slice so clients see [] not null")
	}
	if len(breakdown) != 0 {
		t.Errorf("breakdown has %d entries, want 0", len(breakdown))
	}
	if b, err := json.Marshal(breakdown); err != nil || string(b) != "[]" {
		t.Errorf("breakdown marshals to %s, want []", b)
	}
}

func TestFoldTotalsBreakdownOrder(t *testing.T) {
	rows := []typeCategorySum{
		{Type: "expense", Category: "Rent", Total: dec("100")},
		{Type: "expense", Category: "Food", Total: dec("100")},
		{Type: "expense", Category: "Travel", Total: dec("400")},
	}
	_, _, breakdown := foldTotals(rows)

	want := []string{"Travel", "Food", "Rent"}
	for i, name := range want {
		if breakdown[i].Name != name {
			t.Errorf("breakdown[%d] = %s, want %s", i, breakdown[i].Name, name)
		}
	}
}

func TestFoldMonthly(t *testing.T) {
	rows := []monthTypeSum{
		{Month: "2026-03", Type: "expense", Total: dec("200")},
		{Month: "2026-01", Type: "income", Total: dec("1000")},
		{Month: "2026-01", Type: "expense", Total: dec("400")},
		{Month: "2026-02", Type: "income", Total: dec("1000")},
	}

	series := foldMonthly(rows)

	if len(series) != 3 {
		t.Fatalf("series has %d points, want 3", len(series))
	}
	months := []string{"2026-01", "2026-02", "2026-03"}
	for i, m := range months {
		if series[i].Month != m {
			t.Errorf("series[%d].Month = %s, want %s", i, series[i].Month, m)
		}
	}

	if !series[0].Income.Equal(dec("1000")) || !series[0].Expense.Equal(dec("400")) {
		t.Errorf("2026-01 = %s/%s, want 1000/400", series[0].Income, series[0].Expense)
	}
	if !series[1].Income.Equal(dec("1000")) || !series[1].Expense.IsZero() {
		t.Errorf("2026-02 = %s/%s, want 1000/0", series[1].Income, series[1].Expense)
	}
	if !series[2].Income.IsZero() || !series[2].Expense.Equal(dec("200")) {
		t.Errorf("2026-03 = %s/%s, want 0/200", series[2].Income, series[2].Expense)
	}
}

func TestFoldMonthlyEmpty(t *testing.T) {
	series := foldMonthly(nil)
	if series == nil {
		t.Fatal("series is nil, want empty slice so clients see [] not null")
	}
	if len(series) != 0 {
		t.Errorf("series has %d points, want 0", len(series))
	}
	if b, err := json.Marshal(series); err != nil || string(b) != "[]" {
		t.Errorf("series marshals to %s, want []", b)
	}
}
