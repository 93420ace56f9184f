package dto

import (
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for listing transactions.
// NextToken, when present, takes precedence over Offset.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
	NextToken string `form:"nextToken"`
}

// UpdateTransactionRequest replaces a transaction's header and lines.
// A blank date keeps the stored one.
type UpdateTransactionRequest struct {
	Header EntryHeaderDTO   `json:"header"`
	Lines  []JournalLineDTO `json:"lines" binding:"dive"`
}

// TransactionEntryResponse is one stored ledger leg.
type TransactionEntryResponse struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                     `json:"transactionID"`
	CompanyID     string                     `json:"companyID"`
	Date          string                     `json:"date"`
	Description   string                     `json:"description"`
	Reference     string                     `json:"reference,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	SourceType    domain.SourceType          `json:"sourceType"`
	IsReconciled  bool                       `json:"isReconciled"`
	Amount        decimal.Decimal            `json:"amount"`
	Entries       []TransactionEntryResponse `json:"entries"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

// EditableTransactionResponse pairs a stored transaction with the form state to edit it.
type EditableTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Header      EntryHeaderDTO      `json:"header"`
	Lines       []JournalLineDTO    `json:"lines"`
	Balance     BalanceResponse     `json:"balance"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	NextToken    string                `json:"nextToken,omitempty"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	entries := make([]TransactionEntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = TransactionEntryResponse{
			AccountID:   e.AccountID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
	}
	return TransactionResponse{
		TransactionID: t.TransactionID,
		CompanyID:     t.CompanyID,
		Date:          t.Date,
		Description:   t.Description,
		Reference:     t.Reference,
		Notes:         t.Notes,
		SourceType:    t.SourceType,
		IsReconciled:  t.IsReconciled,
		Amount:        t.Amount,
		Entries:       entries,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func ToListTransactionsResponse(page *domain.TransactionPage, nextToken string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
		NextToken:    nextToken,
	}
	for i := range page.Transactions {
		res.Transactions[i] = ToTransactionResponse(&page.Transactions[i])
	}
	return res
}

func ToEditableTransactionResponse(t *domain.Transaction, lines []domain.JournalLine) EditableTransactionResponse {
	linesRes := ToLinesResponse(lines)
	return EditableTransactionResponse{
		Transaction: ToTransactionResponse(t),
		Header: EntryHeaderDTO{
			Date:        t.Date,
			Description: t.Description,
			Reference:   t.Reference,
			Notes:       t.Notes,
		},
		Lines:   linesRes.Lines,
		Balance: linesRes.Balance,
	}
}
