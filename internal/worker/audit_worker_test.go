package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finlens/internal/amqp"
	"finlens/internal/ledger/sqlite"
)

func TestHandleReportEvent(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "finlens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	w := NewAuditWorker(store)
	ctx := context.Background()

	msg := &amqp.ReportWrittenMessage{
		Name:      "spending_report.json",
		Kind:      "category_spending",
		WrittenAt: time.Date(2023, 3, 31, 12, 0, 0, 0, time.UTC),
	}
	if err := w.HandleReportEvent(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	entries, err := store.RecentReports(ctx, 1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("recent = %v, %v", entries, err)
	}
	if entries[0].Name != msg.Name || entries[0].Kind != msg.Kind {
		t.Fatalf("entry = %+v", entries[0])
	}
}

func TestHandleReportEventRejectsMalformed(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "finlens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	w := NewAuditWorker(store)
	if err := w.HandleReportEvent(context.Background(), &amqp.ReportWrittenMessage{}); err == nil {
		t.Fatalf("expected error for empty event")
	}
}
