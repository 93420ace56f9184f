package accounting_test

import (
	"testing"

	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{".", "0"},
		{"  ", "0"},
		{"abc", "0"},
		{"12", "12"},
		{"12.5", "12.5"},
		{"12.345", "12.345"},
		{" 7.10 ", "7.1"},
		{"0.01", "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := accounting.ParseAmount(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestTruncateToCents(t *testing.T) {
	assert.Equal(t, "12.34", accounting.TruncateToCents(decimal.RequireFromString("12.349")).String())
	assert.Equal(t, "0.99", accounting.TruncateToCents(decimal.RequireFromString("0.999")).String())
	assert.Equal(t, "5", accounting.TruncateToCents(decimal.RequireFromString("5")).String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "", accounting.FormatAmount(decimal.Zero))
	assert.Equal(t, "1500.00", accounting.FormatAmount(decimal.NewFromInt(1500)))
	assert.Equal(t, "0.50", accounting.FormatAmount(decimal.RequireFromString("0.5")))
}
