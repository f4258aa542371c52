package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"finlens/internal/config"
	"finlens/internal/ledger/memory"
	"finlens/internal/ledger/sheets"
	"finlens/internal/ledger/sqlite"
)

var (
	_ RecordSource = (*sqlite.Store)(nil)
	_ RecordWriter = (*sqlite.Store)(nil)
	_ RecordSource = (*sheets.Client)(nil)
	_ RecordSource = (*memory.Store)(nil)
)

// NewSource builds the record source selected by DATA_BACKEND. The returned
// cleanup func is nil for backends with nothing to close.
func NewSource(ctx context.Context, cfg *config.Config) (RecordSource, func() error, error) {
	switch cfg.DataBackend {
	case "sheets":
		cli, err := sheets.NewFromEnv(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		slog.Info("Initialized Google Sheets ledger", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		return cli, nil, nil

	case "sqlite":
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize SQLite ledger: %w", err)
		}
		slog.Info("Initialized SQLite ledger", "db_path", cfg.SQLiteDBPath)
		return store, store.Close, nil

	case "memory":
		store, err := memory.NewFromFile(cfg.MemorySeedPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize memory ledger: %w", err)
		}
		slog.Info("Initialized memory ledger", "seed_path", cfg.MemorySeedPath)
		return store, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
