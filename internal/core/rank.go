package core

import "sort"

// TopByPayment returns the n records with the largest PaymentAmount in
// descending order. The sort is stable: records with equal payment amounts
// keep their relative input order. Fewer than n records means all of them
// come back, in order, without padding.
func TopByPayment(records []Transaction, n int) []Transaction {
	if n <= 0 {
		return nil
	}
	ranked := append([]Transaction(nil), records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PaymentAmount.GreaterThan(ranked[j].PaymentAmount)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
