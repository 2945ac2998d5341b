package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"1234.5":      "$ 1,234.50",
		"0":           "$ 0.00",
		"999":         "$ 999.00",
		"1000":        "$ 1,000.00",
		"1234567.891": "$ 1,234,567.89",
		"-1234.5":     "$ -1,234.50",
	}

	for raw, want := range cases {
		assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(raw)), "FormatCurrency(%s)", raw)
	}
}

// Cells that fail numeric coercion render as the zero amount, never as
// an error marker.
func TestFormatCurrencyCellFailsSoft(t *testing.T) {
	assert.Equal(t, "$ 1,234.50", FormatCurrencyCell("1,234.50"))
	assert.Equal(t, "$ 0.00", FormatCurrencyCell(""))
	assert.Equal(t, "$ 0.00", FormatCurrencyCell("pendiente"))
}
