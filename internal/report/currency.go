package report

import (
	"strings"

	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a fixed-point currency string
// with thousands separators, e.g. "$ 1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return "$ " + sign + groupThousands(intPart) + "." + fracPart
}

// FormatCurrencyCell renders a raw spreadsheet cell as currency.
// Non-numeric cells render as the zero form, never as an error marker.
func FormatCurrencyCell(raw string) string {
	return FormatCurrency(ledger.ParseAmount(raw))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
