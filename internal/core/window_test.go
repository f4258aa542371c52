package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewAnchorDate(t *testing.T) {
	cases := []struct {
		year, month, day int
		ok               bool
	}{
		{2023, 3, 31, true},
		{2020, 2, 29, true}, // leap day
		{2023, 2, 29, false},
		{2023, 13, 1, false},
		{2023, 0, 1, false},
		{2023, 1, 0, false},
		{2023, 4, 31, false},
		{0, 1, 1, false},
	}
	for i, tc := range cases {
		_, err := NewAnchorDate(tc.year, tc.month, tc.day)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("case %d expected ErrInvalidDate, got %v", i, err)
		}
	}
}

func TestSpendingWindowBounds(t *testing.T) {
	anchor := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	from, to := SpendingWindow(anchor)
	if want := anchor.AddDate(0, 0, -90); !from.Equal(want) {
		t.Fatalf("from = %v, want %v", from, want)
	}
	// Upper bound is anchor+1 day, kept for report compatibility.
	if want := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Fatalf("to = %v, want %v", to, want)
	}
}

func TestMonthWindowDecemberRollsOver(t *testing.T) {
	from, to := MonthWindow(2021, 12)
	if !from.Equal(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", from)
	}
	if !to.Equal(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v", to)
	}
}

func TestInWindowEdges(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		date        time.Time
		toInclusive bool
		want        bool
	}{
		{from, true, true},
		{to, true, true},
		{to, false, false}, // half-open upper edge
		{from.AddDate(0, 0, -1), true, false},
		{to.AddDate(0, 0, 1), true, false},
		{time.Time{}, true, false}, // unparsed date never matches
	}
	for i, tc := range cases {
		got := InWindow(Transaction{Date: tc.date}, from, to, tc.toInclusive)
		if got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestFilterWindowEmptyInput(t *testing.T) {
	from, to := MonthWindow(2023, 1)
	if got := FilterWindow(nil, from, to, false); len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}
