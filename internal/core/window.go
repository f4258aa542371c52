package core

import "time"

// NewAnchorDate builds an anchor date from its components, rejecting values
// that do not form a real calendar date (month 13, February 30 and the like).
func NewAnchorDate(year, month, day int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 1/2); reject that.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// SpendingWindow returns the bounds for category-spend aggregation: the 90
// days before the anchor, with the upper bound set to anchor+1 day. Both
// bounds are inclusive. The D+1 upper edge reproduces the behaviour of
// historical reports and must not be tightened to the anchor itself.
func SpendingWindow(anchor time.Time) (from, to time.Time) {
	return anchor.AddDate(0, 0, -90), anchor.AddDate(0, 0, 1)
}

// MonthWindow returns the half-open range [first of month, first of next
// month) used for cashback analysis. December rolls into January.
func MonthWindow(year, month int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// InWindow reports whether the record's date falls inside [from, to] when
// toInclusive is true, or [from, to) otherwise. Records without a parsed
// date never match.
func InWindow(t Transaction, from, to time.Time, toInclusive bool) bool {
	if !t.HasDate() {
		return false
	}
	if t.Date.Before(from) {
		return false
	}
	if toInclusive {
		return !t.Date.After(to)
	}
	return t.Date.Before(to)
}

// FilterWindow returns the records inside the window, preserving input order.
// An empty input yields an empty (nil) result, never an error.
func FilterWindow(records []Transaction, from, to time.Time, toInclusive bool) []Transaction {
	var out []Transaction
	for _, r := range records {
		if InWindow(r, from, to, toInclusive) {
			out = append(out, r)
		}
	}
	return out
}
