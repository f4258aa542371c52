package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"finlens/internal/core"

	"github.com/shopspring/decimal"
)

// seedRecord is the JSON shape of one row in a seed file.
type seedRecord struct {
	Date          string `json:"date"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	PaymentAmount string `json:"payment_amount"`
	Card          string `json:"card"`
}

var seedDateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewFromFile builds a store from a JSON seed file. A missing file yields an
// empty store; a present but malformed file is an error.
func NewFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var rows []seedRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	records := make([]core.Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
		if err != nil {
			return nil, fmt.Errorf("seed row %d: bad amount %q", i, row.Amount)
		}
		payment := amount
		if p := strings.TrimSpace(row.PaymentAmount); p != "" {
			if payment, err = decimal.NewFromString(p); err != nil {
				return nil, fmt.Errorf("seed row %d: bad payment amount %q", i, row.PaymentAmount)
			}
		}
		records = append(records, core.Transaction{
			Date:          parseSeedDate(row.Date),
			Category:      strings.TrimSpace(row.Category),
			Description:   strings.TrimSpace(row.Description),
			Amount:        amount,
			PaymentAmount: payment,
			Card:          strings.TrimSpace(row.Card),
		})
	}
	return New(records), nil
}

func parseSeedDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range seedDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}
