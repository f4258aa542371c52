package ledger

import (
	"context"

	"finlens/internal/core"
)

// Ports for outbound ledger adapters.
type (
	// RecordSource loads the full normalized transaction table. A failed
	// load wraps core.ErrSourceUnavailable so report boundaries can turn
	// it into an error payload instead of propagating.
	RecordSource interface {
		Load(ctx context.Context) ([]core.Transaction, error)
	}

	// RecordWriter ingests normalized records in bulk (used by cmd/ingest).
	RecordWriter interface {
		Append(ctx context.Context, records []core.Transaction) (int, error)
	}
)
