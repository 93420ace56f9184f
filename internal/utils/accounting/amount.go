package accounting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// centsPrecision is the number of decimal places amounts are sent with.
const centsPrecision int32 = 2

// Tolerance is the exclusive bound on |debit - credit| still treated as balanced.
var Tolerance = decimal.New(1, -centsPrecision)

// ParseAmount converts an amount as typed into a form field into a decimal.
// Empty input, a bare "." and anything unparsable count as zero; it never fails.
// No rounding happens here: "12.345" parses to 12.345.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || s == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// TruncateToCents drops every digit past the second decimal place, without rounding.
func TruncateToCents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(centsPrecision)
}

// FormatAmount renders a stored amount for an editable field. Zero renders as "".
func FormatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(centsPrecision)
}
