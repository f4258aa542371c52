package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(date string, category string, amount int64) Transaction {
	var d time.Time
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		d = parsed
	}
	return Transaction{
		Date:     d,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestSpendingByCategory(t *testing.T) {
	records := []Transaction{
		tx("2023-01-01", "Food", -1000),
		tx("2023-02-20", "Food", -1500),
		tx("2023-03-25", "Food", -800),
	}
	anchor := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)

	got := SpendingByCategory(records, "Food", anchor)
	if want := decimal.NewFromInt(-3300); !got.Equal(want) {
		t.Fatalf("Food spending = %s, want %s", got, want)
	}

	// No matching category yields exactly zero, not an error.
	if got := SpendingByCategory(records, "Electronics", anchor); !got.IsZero() {
		t.Fatalf("Electronics spending = %s, want 0", got)
	}
}

func TestSpendingByCategoryWindowEdges(t *testing.T) {
	anchor := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	records := []Transaction{
		tx("2022-12-30", "Food", -100), // one day before the 90-day window
		tx("2022-12-31", "Food", -200), // exactly 90 days back
		tx("2023-04-01", "Food", -400), // anchor+1: still included
		tx("2023-04-02", "Food", -800), // past the upper edge
		tx("", "Food", -1600),          // unparsed date
	}
	got := SpendingByCategory(records, "Food", anchor)
	if want := decimal.NewFromInt(-600); !got.Equal(want) {
		t.Fatalf("spending = %s, want %s", got, want)
	}
}

func TestCashbackByCategory(t *testing.T) {
	records := []Transaction{
		tx("2023-01-05", "Food", -1000),
		tx("2023-01-10", "Transport", -500),
		tx("2023-01-15", "Salary", -2000),
	}
	got := CashbackByCategory(records, 2023, 1, []string{"Salary"})
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(got), got)
	}
	if got[0].Category != "Food" || !got[0].Cashback.Equal(decimal.NewFromInt(10)) {
		t.Errorf("first = %s %s, want Food 10", got[0].Category, got[0].Cashback)
	}
	if got[1].Category != "Transport" || !got[1].Cashback.Equal(decimal.NewFromInt(5)) {
		t.Errorf("second = %s %s, want Transport 5", got[1].Category, got[1].Cashback)
	}
}

func TestCashbackAllExcluded(t *testing.T) {
	records := []Transaction{
		tx("2023-01-05", "Salary", -1000),
		tx("2023-01-10", "Transfers", -500),
	}
	got := CashbackByCategory(records, 2023, 1, []string{"Salary", "Transfers"})
	if len(got) != 0 {
		t.Fatalf("expected empty ranking, got %v", got)
	}
}

func TestCashbackTopThreeAndTies(t *testing.T) {
	records := []Transaction{
		tx("2023-01-01", "A", -100),
		tx("2023-01-02", "B", -400),
		tx("2023-01-03", "C", -400), // ties with B, B was seen first
		tx("2023-01-04", "D", -300),
		tx("2023-01-05", "E", -200),
	}
	got := CashbackByCategory(records, 2023, 1, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	want := []string{"B", "C", "D"}
	for i, cat := range want {
		if got[i].Category != cat {
			t.Errorf("position %d = %s, want %s", i, got[i].Category, cat)
		}
	}
}

func TestCashbackRefundsContributePositively(t *testing.T) {
	// A net refund month still yields non-negative cashback magnitude.
	records := []Transaction{
		tx("2023-01-05", "Food", 500),
	}
	got := CashbackByCategory(records, 2023, 1, nil)
	if len(got) != 1 || !got[0].Cashback.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("got %v, want Food 5", got)
	}
}

func TestCashbackWindowIsHalfOpen(t *testing.T) {
	records := []Transaction{
		tx("2023-01-31", "Food", -1000),
		tx("2023-02-01", "Food", -9000), // first of next month: excluded
	}
	got := CashbackByCategory(records, 2023, 1, nil)
	if len(got) != 1 || !got[0].Cashback.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("got %v, want Food 10", got)
	}
}
