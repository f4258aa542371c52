package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finlens/internal/core"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed ledger: a record source for the analysis engine,
// a record writer for cmd/ingest, and the audit log for written reports.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load implements ledger.RecordSource.
func (s *Store) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT operation_date, category, description, amount, payment_amount, card
		 FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query transactions: %v", core.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var records []core.Transaction
	for rows.Next() {
		var (
			date                 sql.NullString
			category, desc, card string
			amount, payment      string
		)
		if err := rows.Scan(&date, &category, &desc, &amount, &payment, &card); err != nil {
			return nil, fmt.Errorf("%w: scan transaction: %v", core.ErrSourceUnavailable, err)
		}
		rec := core.Transaction{
			Category:    category,
			Description: desc,
			Card:        card,
		}
		if date.Valid && date.String != "" {
			if d, perr := time.Parse(time.RFC3339, date.String); perr == nil {
				rec.Date = d.UTC()
			} else {
				// Keep the record with a zero date so it stays searchable,
				// same as the Sheets path does for unparsable rows.
				slog.WarnContext(ctx, "Unparsable operation date in stored transaction", "value", date.String)
			}
		}
		if rec.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("%w: bad amount %q: %v", core.ErrSourceUnavailable, amount, err)
		}
		if rec.PaymentAmount, err = decimal.NewFromString(payment); err != nil {
			return nil, fmt.Errorf("%w: bad payment amount %q: %v", core.ErrSourceUnavailable, payment, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions: %v", core.ErrSourceUnavailable, err)
	}
	return records, nil
}

// Append implements ledger.RecordWriter with a single transaction per batch.
func (s *Store) Append(ctx context.Context, records []core.Transaction) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin ingest tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (operation_date, category, description, amount, payment_amount, card)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var date any
		if r.HasDate() {
			date = r.Date.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.ExecContext(ctx, date, r.Category, r.Description,
			r.Amount.String(), r.PaymentAmount.String(), r.Card); err != nil {
			return 0, fmt.Errorf("insert transaction: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit ingest tx: %w", err)
	}

	slog.InfoContext(ctx, "Ingested transactions into SQLite", "count", len(records))
	return len(records), nil
}

// LogReport records that a report was written, for the audit worker.
func (s *Store) LogReport(ctx context.Context, name, kind string, writtenAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO report_log (name, kind, written_at) VALUES (?, ?, ?)`,
		name, kind, writtenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert report log: %w", err)
	}
	return nil
}

// ReportLogEntry is one row of the report audit trail.
type ReportLogEntry struct {
	Name      string
	Kind      string
	WrittenAt time.Time
}

// RecentReports returns the newest audit entries, most recent first.
func (s *Store) RecentReports(ctx context.Context, limit int) ([]ReportLogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, written_at FROM report_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query report log: %w", err)
	}
	defer rows.Close()

	var entries []ReportLogEntry
	for rows.Next() {
		var e ReportLogEntry
		var writtenAt string
		if err := rows.Scan(&e.Name, &e.Kind, &writtenAt); err != nil {
			return nil, fmt.Errorf("scan report log: %w", err)
		}
		if e.WrittenAt, err = time.Parse(time.RFC3339, writtenAt); err != nil {
			return nil, fmt.Errorf("parse report log timestamp %q: %w", writtenAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
