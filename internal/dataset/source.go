package dataset

import (
	"context"
	"time"
)

// Snapshot holds both datasets loaded from one source read. It is
// treated as read-only for its whole lifetime; a refresh discards it
// and loads a new one.
type Snapshot struct {
	Payments    *Table
	Commitments *Table
	LoadedAt    time.Time
}

// Source loads both datasets from a configured external origin.
// Implementations must substitute empty values for missing optional
// columns rather than failing.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

func newSnapshot(payments, commitments *Table) *Snapshot {
	for _, col := range OptionalPaymentColumns {
		payments.EnsureColumn(col)
	}
	return &Snapshot{
		Payments:    payments,
		Commitments: commitments,
		LoadedAt:    time.Now(),
	}
}
