package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PaymentStore struct {
	db *sqlx.DB
}

func (ps *PaymentStore) ListPayments(ctx context.Context) ([]PaymentRow, error) {
	query := `
	SELECT
		id,
		COALESCE(beneficiary, '') AS beneficiary,
		COALESCE(contract_code, '') AS contract_code,
		COALESCE(request_letter, '') AS request_letter,
		COALESCE(clc, '') AS clc,
		COALESCE(amount::text, '') AS amount,
		COALESCE(invoice, '') AS invoice,
		COALESCE(to_char(payment_date, 'DD/MM/YYYY'), '') AS payment_date
	FROM
		payments
	ORDER BY
		id;
	`
	rows, err := ps.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	result := []PaymentRow{}
	for rows.Next() {
		row := PaymentRow{}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
