package dataset

import (
	"context"
	"fmt"

	"github.com/farxc/contract_consumption/internal/store"
)

// StoreSource builds the snapshot from Postgres tables kept current by
// the ingestion ETL, for offices that no longer pass spreadsheets
// around.
type StoreSource struct {
	Storage *store.Storage
}

func (s *StoreSource) Load(ctx context.Context) (*Snapshot, error) {
	paymentRows, err := s.Storage.Payment.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments from store: %w", err)
	}

	commitmentRows, err := s.Storage.Commitment.ListCommitments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments from store: %w", err)
	}

	payments := NewTable([]string{
		ColBeneficiary,
		ColContract,
		ColRequestLetter,
		ColCLC,
		ColAmount,
		ColInvoice,
		ColPaymentDate,
	})
	for _, p := range paymentRows {
		payments.Append([]string{
			p.Beneficiary,
			p.ContractCode,
			p.RequestLetter,
			p.CLC,
			p.Amount,
			p.Invoice,
			p.PaymentDate,
		})
	}

	commitments := NewTable([]string{ColDocumentRef, ColTotalAmount})
	for _, c := range commitmentRows {
		commitments.Append([]string{c.DocumentReference, c.TotalAmount})
	}

	return newSnapshot(payments, commitments), nil
}
