package ledger

import (
	"github.com/farxc/contract_consumption/internal/dataset"
	"github.com/shopspring/decimal"
)

// ConsumptionSummary carries the three reconciliation figures for one
// contract. Pending is always Contracted minus Disbursed and may be
// negative when a contract is over-disbursed.
type ConsumptionSummary struct {
	Contracted decimal.Decimal
	Disbursed  decimal.Decimal
	Pending    decimal.Decimal
}

// Consumption joins both datasets on the contract number and sums the
// committed and disbursed amounts. An empty contract id means no
// contract is unambiguously selected and yields a zero summary, same as
// a contract with no matching rows on either side.
func Consumption(snap *dataset.Snapshot, contractID string) ConsumptionSummary {
	if contractID == "" {
		return zeroSummary()
	}

	contracted := decimal.Zero
	for _, row := range snap.Commitments.Rows() {
		if ref, ok := row.Lookup(dataset.ColDocumentRef); ok && ref == contractID {
			contracted = contracted.Add(ParseAmount(row.Get(dataset.ColTotalAmount)))
		}
	}

	disbursed := decimal.Zero
	for _, row := range snap.Payments.Rows() {
		if contract, ok := row.Lookup(dataset.ColContract); ok && contract == contractID {
			disbursed = disbursed.Add(ParseAmount(row.Get(dataset.ColAmount)))
		}
	}

	return ConsumptionSummary{
		Contracted: contracted,
		Disbursed:  disbursed,
		Pending:    contracted.Sub(disbursed),
	}
}

// SelectContract resolves which contract the consumption panel should
// show. An explicit choice always wins; otherwise, when the filtered
// view holds exactly one distinct contract, that one is used. Zero or
// several remaining contracts resolve to "" (the zero-summary case).
func SelectContract(filtered []dataset.Row, explicit string) string {
	if explicit != "" {
		return explicit
	}

	distinct := ""
	for _, row := range filtered {
		contract := row.Get(dataset.ColContract)
		if contract == "" {
			continue
		}
		if distinct == "" {
			distinct = contract
			continue
		}
		if contract != distinct {
			return ""
		}
	}
	return distinct
}

func zeroSummary() ConsumptionSummary {
	return ConsumptionSummary{
		Contracted: decimal.Zero,
		Disbursed:  decimal.Zero,
		Pending:    decimal.Zero,
	}
}
