package core

import "strings"

// SearchTransactions returns the records whose description or category
// contains the query, compared case-insensitively, in input order. Blank
// fields never match, so an empty query still selects only records that
// carry some text. A nil result means no match; callers decide how to
// represent that distinctly from an empty ledger.
func SearchTransactions(records []Transaction, query string) []Transaction {
	q := strings.ToLower(query)
	var out []Transaction
	for _, r := range records {
		if containsFold(r.Description, q) || containsFold(r.Category, q) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
