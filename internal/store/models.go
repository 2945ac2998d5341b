package store

// PaymentRow represents one disbursement row of the 'payments' table.
// Values stay textual: the reconciliation engine does all coercion at
// use-site, same as with the spreadsheet sources.
type PaymentRow struct {
	ID            int64  `db:"id"`
	Beneficiary   string `db:"beneficiary"`
	ContractCode  string `db:"contract_code"`
	RequestLetter string `db:"request_letter"`
	CLC           string `db:"clc"`
	Amount        string `db:"amount"`
	Invoice       string `db:"invoice"`
	PaymentDate   string `db:"payment_date"`
}

// CommitmentRow represents one contractual commitment of the
// 'commitments' table.
type CommitmentRow struct {
	ID                int64  `db:"id"`
	DocumentReference string `db:"document_reference"`
	TotalAmount       string `db:"total_amount"`
}
