package accounting_test

import (
	"testing"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeKeystroke(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"12a.5":   "12.5",
		"1.2.3":   "1.23",
		"$1,000":  "1000",
		"..5":     ".5",
		"-3":      "3",
		"12.":     "12.",
		"0.00001": "0.00001",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got := accounting.SanitizeKeystroke(in)
			assert.Equal(t, want, got)
			assert.Equal(t, got, accounting.SanitizeKeystroke(got), "keystroke sanitising must be idempotent")
		})
	}
}

func TestSanitizeOnBlur(t *testing.T) {
	tests := map[string]string{
		"":       "",
		".":      "",
		"007":    "7",
		"0":      "0",
		"00":     "0",
		"0.5":    "0.5",
		"00.50":  "0.50",
		".5":     "0.5",
		"12.":    "12",
		"12.345": "12.34",
		"12.999": "12.99",
		"1.2.3":  "1.23",
		"abc":    "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got := accounting.SanitizeOnBlur(in)
			assert.Equal(t, want, got)
			assert.Equal(t, got, accounting.SanitizeOnBlur(got), "blur sanitising must be idempotent")
		})
	}
}

func TestBlurLine(t *testing.T) {
	t.Run("positive amount clears opposite side", func(t *testing.T) {
		line := domain.JournalLine{DebitAmount: "50", CreditAmount: "100.456"}
		got := accounting.BlurLine(line, domain.CreditSide)
		assert.Equal(t, "100.45", got.CreditAmount)
		assert.Empty(t, got.DebitAmount)
	})

	t.Run("zero keeps opposite side", func(t *testing.T) {
		line := domain.JournalLine{DebitAmount: "50", CreditAmount: "0"}
		got := accounting.BlurLine(line, domain.CreditSide)
		assert.Equal(t, "0", got.CreditAmount)
		assert.Equal(t, "50", got.DebitAmount)
	})

	t.Run("empty keeps opposite side", func(t *testing.T) {
		line := domain.JournalLine{DebitAmount: "50", CreditAmount: "."}
		got := accounting.BlurLine(line, domain.CreditSide)
		assert.Empty(t, got.CreditAmount)
		assert.Equal(t, "50", got.DebitAmount)
	})
}
