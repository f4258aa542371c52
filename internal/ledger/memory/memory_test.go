package memory

import (
	"context"
	"errors"
	"testing"

	"finlens/internal/core"

	"github.com/shopspring/decimal"
)

func TestLoadReturnsCopy(t *testing.T) {
	store := New([]core.Transaction{{Category: "Food", Amount: decimal.NewFromInt(-10)}})

	first, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first[0].Category = "mutated"

	second, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if second[0].Category != "Food" {
		t.Fatalf("store leaked its backing slice")
	}
}

func TestAppendAndFailWith(t *testing.T) {
	store := New(nil)
	ctx := context.Background()

	n, err := store.Append(ctx, []core.Transaction{{Category: "A"}, {Category: "B"}})
	if err != nil || n != 2 {
		t.Fatalf("append = %d, %v", n, err)
	}
	records, err := store.Load(ctx)
	if err != nil || len(records) != 2 {
		t.Fatalf("load after append = %d, %v", len(records), err)
	}

	store.FailWith(core.ErrSourceUnavailable)
	if _, err := store.Load(ctx); !errors.Is(err, core.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}
