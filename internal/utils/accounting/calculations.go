package accounting

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balance holds the debit and credit totals of a set of journal lines.
type Balance struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"` // TotalDebit - TotalCredit
}

// IsBalanced reports whether debits and credits agree to within one cent (exclusive).
func (b Balance) IsBalanced() bool {
	return b.Difference.Abs().LessThan(Tolerance)
}

// CalculateBalance sums every line's debit and credit amounts. Unparsable or empty
// amounts count as zero. It is cheap enough to run on every keystroke.
func CalculateBalance(lines []domain.JournalLine) Balance {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(ParseAmount(line.DebitAmount))
		totalCredit = totalCredit.Add(ParseAmount(line.CreditAmount))
	}
	return Balance{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  totalDebit.Sub(totalCredit),
	}
}

// EntriesBalance sums assembled entries the same way CalculateBalance sums lines.
func EntriesBalance(entries []domain.TransactionEntry) Balance {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, entry := range entries {
		totalDebit = totalDebit.Add(entry.Debit)
		totalCredit = totalCredit.Add(entry.Credit)
	}
	return Balance{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  totalDebit.Sub(totalCredit),
	}
}
