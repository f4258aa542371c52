package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finlens/internal/config"
	"finlens/internal/ledger/sheets"
	"finlens/internal/ledger/sqlite"
	"finlens/internal/log"
)

// ingest copies the full transaction history from the configured Google
// spreadsheet into the local SQLite ledger. Run it once before switching
// DATA_BACKEND to sqlite, or again whenever the sheet is the source of truth.
func main() {
	_ = godotenv.Load()

	logger := log.New(log.ComponentIngest)
	log.SetDefault(logger)

	cfg := config.Load()
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for ingest")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	source, err := sheets.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets source", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open SQLite ledger", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer store.Close()

	records, err := source.Load(ctx)
	if err != nil {
		logger.Error("Failed to load transactions from sheet", "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded transactions from sheet", log.FieldRecords, len(records))

	written, err := store.Append(ctx, records)
	if err != nil {
		logger.Error("Failed to write transactions to SQLite", "error", err)
		os.Exit(1)
	}

	logger.Info("Ingest complete", log.FieldRecords, written, "path", cfg.SQLiteDBPath)
}
