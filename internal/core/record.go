package core

import (
	"errors"

	"time"

	"github.com/shopspring/decimal"
)

type (
	// Transaction is one normalized ledger row. The zero value of Date marks
	// a record whose operation date could not be parsed at ingestion; such
	// records never match a date window but stay visible to search. Empty
	// Description or Card means the source cell was blank.
	Transaction struct {
		Date          time.Time
		Category      string
		Description   string
		Amount        decimal.Decimal
		PaymentAmount decimal.Decimal
		Card          string
	}

	// CategoryCashback pairs a category with its derived cashback amount.
	CategoryCashback struct {
		Category string
		Cashback decimal.Decimal
	}

	// CardSummary aggregates spend for one card.
	CardSummary struct {
		LastDigits string
		TotalSpent decimal.Decimal
		Cashback   decimal.Decimal
	}
)

var (
	ErrInvalidDate       = errors.New("invalid calendar date")
	ErrMissingCredential = errors.New("missing required credential")
	ErrSourceUnavailable = errors.New("record source unavailable")
)

// HasDate reports whether the record carries a parsed operation date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}
