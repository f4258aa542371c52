package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// SpendingByCategory sums the signed Amount of every record with the exact
// category inside the 90-day spending window around the anchor. A sum of
// zero is a legitimate answer when nothing matches.
func SpendingByCategory(records []Transaction, category string, anchor time.Time) decimal.Decimal {
	from, to := SpendingWindow(anchor)
	total := decimal.Zero
	for _, r := range records {
		if r.Category != category {
			continue
		}
		if !InWindow(r, from, to, true) {
			continue
		}
		total = total.Add(r.Amount)
	}
	return total
}

// CashbackByCategory derives cashback per category over one calendar month:
// abs(sum(Amount)) / 100 for every category not on the exclusion list, kept
// at the top 3 by value. Exclusion matching is case-sensitive and exact.
// Ties keep the order in which categories were first seen in the input.
func CashbackByCategory(records []Transaction, year, month int, exclude []string) []CategoryCashback {
	from, to := MonthWindow(year, month)

	excluded := make(map[string]struct{}, len(exclude))
	for _, c := range exclude {
		excluded[c] = struct{}{}
	}

	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range records {
		if !InWindow(r, from, to, false) {
			continue
		}
		if _, skip := excluded[r.Category]; skip {
			continue
		}
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		sums[r.Category] = sums[r.Category].Add(r.Amount)
	}

	out := make([]CategoryCashback, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryCashback{
			Category: cat,
			Cashback: sums[cat].Abs().Div(oneHundred),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cashback.GreaterThan(out[j].Cashback)
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
