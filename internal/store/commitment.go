package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CommitmentStore struct {
	db *sqlx.DB
}

func (cs *CommitmentStore) ListCommitments(ctx context.Context) ([]CommitmentRow, error) {
	query := `
	SELECT
		id,
		COALESCE(document_reference, '') AS document_reference,
		COALESCE(total_amount::text, '') AS total_amount
	FROM
		commitments
	ORDER BY
		id;
	`
	rows, err := cs.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitments: %w", err)
	}
	defer rows.Close()

	result := []CommitmentRow{}
	for rows.Next() {
		row := CommitmentRow{}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan commitment row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
