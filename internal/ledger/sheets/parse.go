package sheets

import (
	"strings"
	"time"

	"finlens/internal/core"

	"github.com/shopspring/decimal"
)

// Accepted operation-date layouts. Bank exports use the dotted European
// form; manually maintained sheets tend to use ISO.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseRows converts a Sheets values matrix into transactions. The first row
// must hold headers (Date, Category, Description, Amount, Payment Amount,
// Card); header matching is case-insensitive. Rows whose amount cannot be
// parsed are dropped and counted; rows with an unparsable date keep a zero
// Date so they stay searchable.
func parseRows(values [][]interface{}) ([]core.Transaction, int) {
	if len(values) < 2 {
		return nil, 0
	}
	headers := toStrings(values[0])
	colDate := indexOf(headers, "Date")
	colCategory := indexOf(headers, "Category")
	colDescription := indexOf(headers, "Description")
	colAmount := indexOf(headers, "Amount")
	colPayment := indexOf(headers, "Payment Amount")
	colCard := indexOf(headers, "Card")
	if colAmount == -1 || colCategory == -1 {
		return nil, len(values) - 1
	}

	var records []core.Transaction
	skipped := 0
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		amount, ok := parseAmount(safeGet(row, colAmount))
		if !ok {
			skipped++
			continue
		}
		payment := amount
		if p, ok := parseAmount(safeGet(row, colPayment)); ok {
			payment = p
		}
		records = append(records, core.Transaction{
			Date:          parseDate(safeGet(row, colDate)),
			Category:      strings.TrimSpace(safeGet(row, colCategory)),
			Description:   strings.TrimSpace(safeGet(row, colDescription)),
			Amount:        amount,
			PaymentAmount: payment,
			Card:          strings.TrimSpace(safeGet(row, colCard)),
		})
	}
	return records, skipped
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}

func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
