// Package report composes the analytical reports and owns their wire shape.
// Everything here is derived, produced fresh per call and never mutated
// after construction; persistence is an explicit sink call, not a side
// effect of composing.
package report

import (
	"bytes"
	"encoding/json"
	"time"

	"finlens/internal/core"
	"finlens/internal/market"
)

const (
	topTransactionsLimit = 5
	dateLayout           = "02.01.2006"
	anchorLayout         = "2006-01-02"
	recordDateLayout     = "02.01.2006 15:04:05"
)

type (
	// HomeReport is the composite "home" payload.
	HomeReport struct {
		Greeting        string              `json:"greeting"`
		Cards           []Card              `json:"cards"`
		TopTransactions []TopTransaction    `json:"top_transactions"`
		CurrencyRates   []market.Rate       `json:"currency_rates"`
		StockPrices     []market.StockPrice `json:"stock_prices"`
	}

	Card struct {
		LastDigits string  `json:"last_digits"`
		TotalSpent float64 `json:"total_spent"`
		Cashback   float64 `json:"cashback"`
	}

	TopTransaction struct {
		Date          string  `json:"date"`
		PaymentAmount float64 `json:"payment_amount"`
		Category      string  `json:"category"`
		Description   string  `json:"description"`
	}

	// SpendingReport is the 90-day category spend payload.
	SpendingReport struct {
		Category      string  `json:"category"`
		TotalSpending float64 `json:"total_spending"`
		Date          string  `json:"date"`
	}

	// CashbackReport is an ordered category→cashback mapping. It marshals
	// to a JSON object whose keys keep ranking order, which a plain Go map
	// cannot guarantee.
	CashbackReport []core.CategoryCashback

	// SearchReport carries matching records in input order.
	SearchReport struct {
		Transactions []TransactionPayload `json:"transactions"`
	}

	// NoResult is the explicit "searched, found nothing" marker, distinct
	// from an empty transaction list.
	NoResult struct {
		Message string `json:"message"`
	}

	// ErrorPayload is the single-field error shape surfaced when the record
	// source is unavailable at a search/cashback boundary.
	ErrorPayload struct {
		Error string `json:"error"`
	}

	// TransactionPayload serializes one record verbatim: no rounding, no
	// reformatting beyond date rendering, nulls for absent fields.
	TransactionPayload struct {
		Date          *string `json:"date"`
		Category      string  `json:"category"`
		Description   *string `json:"description"`
		Amount        float64 `json:"amount"`
		PaymentAmount float64 `json:"payment_amount"`
		Card          *string `json:"card"`
	}
)

const noResultMessage = "No matching transactions found."

// MarshalJSON emits the ranking as an ordered JSON object.
func (r CashbackReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Cashback.InexactFloat64())
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func newTransactionPayload(t core.Transaction) TransactionPayload {
	p := TransactionPayload{
		Category:      t.Category,
		Amount:        t.Amount.InexactFloat64(),
		PaymentAmount: t.PaymentAmount.InexactFloat64(),
	}
	if t.HasDate() {
		d := t.Date.Format(recordDateLayout)
		p.Date = &d
	}
	if t.Description != "" {
		desc := t.Description
		p.Description = &desc
	}
	if t.Card != "" {
		card := t.Card
		p.Card = &card
	}
	return p
}

func newTopTransaction(t core.Transaction) TopTransaction {
	var date string
	if t.HasDate() {
		date = t.Date.Format(dateLayout)
	}
	return TopTransaction{
		Date:          date,
		PaymentAmount: t.PaymentAmount.InexactFloat64(),
		Category:      t.Category,
		Description:   t.Description,
	}
}

func newCard(c core.CardSummary) Card {
	return Card{
		LastDigits: c.LastDigits,
		TotalSpent: c.TotalSpent.InexactFloat64(),
		Cashback:   c.Cashback.InexactFloat64(),
	}
}

func formatAnchor(t time.Time) string {
	return t.Format(anchorLayout)
}
