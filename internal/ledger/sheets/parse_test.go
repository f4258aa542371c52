package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func row(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

var header = row("Date", "Category", "Description", "Amount", "Payment Amount", "Card")

func TestParseRows(t *testing.T) {
	values := [][]interface{}{
		header,
		row("31.12.2021 16:44:00", "Food", "Supermarket", "-160.89", "-160.89", "*7197"),
		row("2021-12-31", "Transfers", "", "-800", "", ""),
	}
	records, skipped := parseRows(values)
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if !first.Date.Equal(time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC)) {
		t.Errorf("date = %v", first.Date)
	}
	if !first.Amount.Equal(decimal.RequireFromString("-160.89")) {
		t.Errorf("amount = %s", first.Amount)
	}
	if first.Card != "*7197" {
		t.Errorf("card = %q", first.Card)
	}

	second := records[1]
	if second.Description != "" || second.Card != "" {
		t.Errorf("blank cells should stay empty: %+v", second)
	}
	// Payment amount falls back to the operation amount when blank.
	if !second.PaymentAmount.Equal(second.Amount) {
		t.Errorf("payment fallback = %s, want %s", second.PaymentAmount, second.Amount)
	}
}

func TestParseRowsUnparsableDateKept(t *testing.T) {
	values := [][]interface{}{
		header,
		row("not a date", "Food", "Kiosk", "-10", "-10", ""),
	}
	records, skipped := parseRows(values)
	if skipped != 0 || len(records) != 1 {
		t.Fatalf("records=%d skipped=%d", len(records), skipped)
	}
	if records[0].HasDate() {
		t.Fatalf("unparsable date should yield zero time, got %v", records[0].Date)
	}
}

func TestParseRowsBadAmountSkipped(t *testing.T) {
	values := [][]interface{}{
		header,
		row("01.01.2022", "Food", "ok", "-10", "-10", ""),
		row("01.01.2022", "Food", "bad", "n/a", "", ""),
	}
	records, skipped := parseRows(values)
	if len(records) != 1 || skipped != 1 {
		t.Fatalf("records=%d skipped=%d, want 1/1", len(records), skipped)
	}
}

func TestParseRowsDecimalComma(t *testing.T) {
	values := [][]interface{}{
		header,
		row("01.01.2022", "Food", "", "-120,50", "", ""),
	}
	records, _ := parseRows(values)
	if len(records) != 1 || !records[0].Amount.Equal(decimal.RequireFromString("-120.50")) {
		t.Fatalf("comma amount parsed as %v", records)
	}
}

func TestParseRowsEmptyAndHeaderOnly(t *testing.T) {
	if records, _ := parseRows(nil); records != nil {
		t.Fatalf("nil input should yield nil")
	}
	if records, _ := parseRows([][]interface{}{header}); records != nil {
		t.Fatalf("header-only input should yield nil")
	}
}
