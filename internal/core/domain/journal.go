package domain

import "github.com/shopspring/decimal"

// Side identifies the debit or credit column of a journal line.
type Side string

const (
	DebitSide  Side = "DEBIT"
	CreditSide Side = "CREDIT"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == DebitSide {
		return CreditSide
	}
	return DebitSide
}

// JournalLine is one editable row of a journal entry form.
// Amounts stay strings while editing so partial input such as "12." survives.
type JournalLine struct {
	ID           int    `json:"id"` // form-local sequence number, never sent to the backend
	AccountID    string `json:"accountID"`
	Description  string `json:"description"`
	DebitAmount  string `json:"debitAmount"`
	CreditAmount string `json:"creditAmount"`
}

// Amount returns the raw amount string of the given side.
func (l JournalLine) Amount(side Side) string {
	if side == DebitSide {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// SetAmount replaces the raw amount string of the given side.
func (l *JournalLine) SetAmount(side Side, value string) {
	if side == DebitSide {
		l.DebitAmount = value
		return
	}
	l.CreditAmount = value
}

// EntryHeader holds the transaction-level fields of a journal entry form.
type EntryHeader struct {
	Date        string `json:"date"` // YYYY-MM-DD, empty when not chosen
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// TransactionEntry is one assembled ledger leg as sent to and returned by the backend.
type TransactionEntry struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}
