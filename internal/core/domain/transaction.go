package domain

import (
	"github.com/shopspring/decimal"
)

// SourceType records which form produced a transaction.
type SourceType string

const (
	SourceManual         SourceType = "MANUAL"
	SourceExpense        SourceType = "EXPENSE"
	SourceRevenue        SourceType = "REVENUE"
	SourceTransfer       SourceType = "TRANSFER"
	SourceOpeningBalance SourceType = "OPENING_BALANCE"
)

// NewTransaction is the fully assembled, already validated request for the backend.
type NewTransaction struct {
	CompanyID   string             `json:"companyID"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Reference   string             `json:"reference,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	SourceType  SourceType         `json:"sourceType"`
	Entries     []TransactionEntry `json:"entries"`
}

// Transaction is a recorded transaction as stored by the accounting backend.
type Transaction struct {
	TransactionID string             `json:"transactionID"`
	CompanyID     string             `json:"companyID"`
	Date          string             `json:"date"`
	Description   string             `json:"description"`
	Reference     string             `json:"reference,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	SourceType    SourceType         `json:"sourceType"`
	IsReconciled  bool               `json:"isReconciled"`
	Amount        decimal.Decimal    `json:"amount"`
	Entries       []TransactionEntry `json:"entries"`
	AuditFields
}

// TransactionPage is one page of a transaction listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}
