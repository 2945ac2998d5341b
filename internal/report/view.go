package report

import (
	"github.com/farxc/contract_consumption/internal/dataset"
	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/shopspring/decimal"
)

// TotalMarker is the literal beneficiary cell of the synthetic totals
// row.
const TotalMarker = "TOTAL"

// ReceiptColumn is the header of the synthetic receipt-link column.
const ReceiptColumn = "RECIBO"

var viewColumns = []string{
	dataset.ColBeneficiary,
	dataset.ColContract,
	dataset.ColRequestLetter,
	dataset.ColCLC,
	dataset.ColAmount,
	dataset.ColInvoice,
	dataset.ColPaymentDate,
}

// View is the displayable table: fixed column order and amounts already
// formatted as currency. The export path serializes exactly this.
type View struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ViewOptions controls the optional view features.
type ViewOptions struct {
	// IncludeTotals appends a synthetic row summing the raw amounts of
	// the filtered set before any formatting, so separators introduced
	// by formatting are never re-parsed.
	IncludeTotals bool
	// Receipts, when set, appends a receipt-link column keyed by the
	// invoice reference.
	Receipts *ReceiptIndex
}

// BuildView renders the filtered payment rows into the display table.
func BuildView(rows []dataset.Row, opts ViewOptions) View {
	columns := append([]string{}, viewColumns...)
	if opts.Receipts != nil {
		columns = append(columns, ReceiptColumn)
	}

	view := View{Columns: columns, Rows: [][]string{}}
	total := decimal.Zero

	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range viewColumns {
			if col == dataset.ColAmount {
				cells = append(cells, FormatCurrencyCell(row.Get(col)))
				continue
			}
			cells = append(cells, row.Get(col))
		}
		if opts.Receipts != nil {
			cells = append(cells, opts.Receipts.LinkFor(row.Get(dataset.ColInvoice)))
		}

		total = total.Add(ledger.ParseAmount(row.Get(dataset.ColAmount)))
		view.Rows = append(view.Rows, cells)
	}

	if opts.IncludeTotals {
		view.Rows = append(view.Rows, totalsRow(columns, total))
	}

	return view
}

func totalsRow(columns []string, total decimal.Decimal) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case dataset.ColBeneficiary:
			cells[i] = TotalMarker
		case dataset.ColAmount:
			cells[i] = FormatCurrency(total)
		}
	}
	return cells
}

// ConsumptionView is the consumption panel payload: the three figures
// rendered as currency next to the contract they describe.
type ConsumptionView struct {
	Contract   string `json:"contract,omitempty"`
	Contracted string `json:"contracted"`
	Disbursed  string `json:"disbursed"`
	Pending    string `json:"pending"`
}

// FormatConsumption renders a summary for the consumption panel.
func FormatConsumption(contractID string, summary ledger.ConsumptionSummary) ConsumptionView {
	return ConsumptionView{
		Contract:   contractID,
		Contracted: FormatCurrency(summary.Contracted),
		Disbursed:  FormatCurrency(summary.Disbursed),
		Pending:    FormatCurrency(summary.Pending),
	}
}
