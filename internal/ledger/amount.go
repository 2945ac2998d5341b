package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a raw spreadsheet cell into a decimal amount.
// Cells arrive as "1,000.00", "$ 2,500.00", "500" or plain garbage;
// currency markers, thousands separators and surrounding space are
// stripped and anything that still fails to parse counts as zero.
func ParseAmount(raw string) decimal.Decimal {
	cleanStr := strings.TrimSpace(raw)
	cleanStr = strings.TrimPrefix(cleanStr, "$")
	cleanStr = strings.ReplaceAll(cleanStr, ",", "")
	cleanStr = strings.ReplaceAll(cleanStr, " ", "")
	if cleanStr == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleanStr)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
