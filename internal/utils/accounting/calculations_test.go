package accounting_test

import (
	"testing"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBalance(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "cash", DebitAmount: "100.10"},
		{AccountID: "sales", CreditAmount: "60"},
		{AccountID: "", CreditAmount: "40.10"},
		{DebitAmount: "junk"},
	}
	b := accounting.CalculateBalance(lines)
	assert.True(t, b.TotalDebit.Equal(decimal.RequireFromString("100.10")))
	assert.True(t, b.TotalCredit.Equal(decimal.RequireFromString("100.10")))
	assert.True(t, b.Difference.IsZero())
	assert.True(t, b.IsBalanced())
}

func TestBalance_IsBalancedBoundary(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{"equal", "100.00", "100.00", true},
		{"one cent off", "100.00", "99.99", false},
		{"sub cent off", "100.005", "100", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := accounting.CalculateBalance([]domain.JournalLine{
				{AccountID: "a", DebitAmount: tt.debit},
				{AccountID: "b", CreditAmount: tt.credit},
			})
			assert.Equal(t, tt.want, b.IsBalanced())
		})
	}
}

func TestEntriesBalance(t *testing.T) {
	b := accounting.EntriesBalance([]domain.TransactionEntry{
		{AccountID: "a", Debit: decimal.NewFromInt(10)},
		{AccountID: "b", Credit: decimal.NewFromInt(7)},
	})
	assert.True(t, b.Difference.Equal(decimal.NewFromInt(3)))
	assert.False(t, b.IsBalanced())
}
