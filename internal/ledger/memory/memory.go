package memory

import (
	"context"
	"sync"

	"finlens/internal/core"
)

// Store is an in-memory record source used as the default backend and in
// tests. The stored slice is treated as immutable; Load hands out a copy so
// no caller can mutate another caller's view.
type Store struct {
	mu      sync.Mutex
	records []core.Transaction
	loadErr error
}

func New(records []core.Transaction) *Store {
	return &Store{records: append([]core.Transaction(nil), records...)}
}

// Load implements ledger.RecordSource.
func (s *Store) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]core.Transaction(nil), s.records...), nil
}

// Append implements ledger.RecordWriter.
func (s *Store) Append(_ context.Context, records []core.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return len(records), nil
}

// FailWith makes every subsequent Load return err. Test hook for exercising
// the source-unavailable boundary.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}
