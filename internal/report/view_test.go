package report

import (
	"testing"

	"github.com/farxc/contract_consumption/internal/dataset"
	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func paymentsTable(rows ...[]string) *dataset.Table {
	t := dataset.NewTable([]string{
		dataset.ColBeneficiary,
		dataset.ColContract,
		dataset.ColRequestLetter,
		dataset.ColCLC,
		dataset.ColAmount,
		dataset.ColInvoice,
		dataset.ColPaymentDate,
	})
	for _, row := range rows {
		t.Append(row)
	}
	return t
}

func TestBuildViewFormatsAmounts(t *testing.T) {
	payments := paymentsTable(
		[]string{"ACME", "C1", "OF-9", "CLC-001", "1,000.00", "F-1", "01/02/2025"},
	)

	view := BuildView(payments.Rows(), ViewOptions{})

	assert.Equal(t, []string{
		dataset.ColBeneficiary,
		dataset.ColContract,
		dataset.ColRequestLetter,
		dataset.ColCLC,
		dataset.ColAmount,
		dataset.ColInvoice,
		dataset.ColPaymentDate,
	}, view.Columns)
	assert.Equal(t, [][]string{
		{"ACME", "C1", "OF-9", "CLC-001", "$ 1,000.00", "F-1", "01/02/2025"},
	}, view.Rows)
}

// The totals row sums the raw cell amounts before formatting; the
// formatted strings with their separators are never parsed back.
func TestBuildViewTotalsRowSumsPreFormatAmounts(t *testing.T) {
	payments := paymentsTable(
		[]string{"ACME", "C1", "", "", "1,000.00", "", ""},
		[]string{"ACME", "C1", "", "", "2,500.50", "", ""},
		[]string{"ACME", "C1", "", "", "sin dato", "", ""},
	)

	view := BuildView(payments.Rows(), ViewOptions{IncludeTotals: true})

	assert.Len(t, view.Rows, 4)
	totals := view.Rows[3]
	assert.Equal(t, TotalMarker, totals[0])
	assert.Equal(t, "$ 3,500.50", totals[4])
	assert.Equal(t, "", totals[1])

	raw := decimal.Zero
	for _, amount := range []string{"1,000.00", "2,500.50", "sin dato"} {
		raw = raw.Add(ledger.ParseAmount(amount))
	}
	assert.Equal(t, FormatCurrency(raw), totals[4])
}

func TestBuildViewAttachesReceiptLinks(t *testing.T) {
	payments := paymentsTable(
		[]string{"ACME", "C1", "", "", "100", "FACTURA A-102", ""},
		[]string{"ACME", "C1", "", "", "200", "FACTURA C-9", ""},
	)
	index := NewReceiptIndex(map[string]string{
		"factura A-102.pdf": "https://drive.example/a102",
	})

	view := BuildView(payments.Rows(), ViewOptions{Receipts: index})

	assert.Equal(t, ReceiptColumn, view.Columns[len(view.Columns)-1])
	assert.Equal(t, "https://drive.example/a102", view.Rows[0][len(view.Columns)-1])
	assert.Equal(t, ReceiptNotFound, view.Rows[1][len(view.Columns)-1])
}

func TestBuildViewEmptyInput(t *testing.T) {
	view := BuildView(nil, ViewOptions{IncludeTotals: true})

	assert.Len(t, view.Rows, 1)
	assert.Equal(t, TotalMarker, view.Rows[0][0])
	assert.Equal(t, "$ 0.00", view.Rows[0][4])
}

func TestFormatConsumption(t *testing.T) {
	summary := ledger.ConsumptionSummary{
		Contracted: decimal.RequireFromString("2000"),
		Disbursed:  decimal.RequireFromString("1000"),
		Pending:    decimal.RequireFromString("1000"),
	}

	out := FormatConsumption("C1", summary)

	assert.Equal(t, "C1", out.Contract)
	assert.Equal(t, "$ 2,000.00", out.Contracted)
	assert.Equal(t, "$ 1,000.00", out.Disbursed)
	assert.Equal(t, "$ 1,000.00", out.Pending)
}
