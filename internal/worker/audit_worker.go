package worker

import (
	"context"
	"fmt"
	"log/slog"

	"finlens/internal/amqp"
	"finlens/internal/ledger/sqlite"
)

// AuditWorker records report-written events in the SQLite report log so
// there is a durable trail of every persisted report.
type AuditWorker struct {
	store *sqlite.Store
}

func NewAuditWorker(store *sqlite.Store) *AuditWorker {
	return &AuditWorker{store: store}
}

// HandleReportEvent processes one report-written event from AMQP.
func (w *AuditWorker) HandleReportEvent(ctx context.Context, msg *amqp.ReportWrittenMessage) error {
	if msg.Name == "" || msg.Kind == "" {
		return fmt.Errorf("malformed report event: name=%q kind=%q", msg.Name, msg.Kind)
	}

	if err := w.store.LogReport(ctx, msg.Name, msg.Kind, msg.WrittenAt); err != nil {
		return fmt.Errorf("log report event: %w", err)
	}

	slog.InfoContext(ctx, "Report event recorded",
		"report", msg.Name,
		"kind", msg.Kind,
		"written_at", msg.WrittenAt)
	return nil
}
