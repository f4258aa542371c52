package core

import "github.com/shopspring/decimal"

var minusHundred = decimal.NewFromInt(-100)

// SummarizeCards groups records by card number and sums their spend. Records
// without a card number contribute to no group. Groups appear in the order
// each card was first seen in the input. TotalSpent keeps the ledger's sign
// convention (expenses negative); Cashback is TotalSpent / -100 so that net
// spending yields a positive cashback. Both values are rounded to 2 decimal
// places, half away from zero (decimal.Round semantics).
func SummarizeCards(records []Transaction) []CardSummary {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range records {
		if r.Card == "" {
			continue
		}
		if _, seen := sums[r.Card]; !seen {
			order = append(order, r.Card)
		}
		sums[r.Card] = sums[r.Card].Add(r.Amount)
	}

	out := make([]CardSummary, 0, len(order))
	for _, card := range order {
		total := sums[card]
		out = append(out, CardSummary{
			LastDigits: lastFour(card),
			TotalSpent: total.Round(2),
			Cashback:   total.Div(minusHundred).Round(2),
		})
	}
	return out
}

func lastFour(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
