package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Payment interface {
		ListPayments(ctx context.Context) ([]PaymentRow, error)
	}

	Commitment interface {
		ListCommitments(ctx context.Context) ([]CommitmentRow, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Payment:    &PaymentStore{db: db},
		Commitment: &CommitmentStore{db: db},
	}
}
