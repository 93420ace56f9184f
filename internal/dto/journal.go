package dto

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// JournalLineDTO is one line of a journal entry form as the client edits it.
// Amounts are strings so partially typed values such as "12." survive a round trip.
type JournalLineDTO struct {
	ID           int    `json:"id"`
	AccountID    string `json:"accountID" binding:"max=64"`
	Description  string `json:"description" binding:"max=255"`
	DebitAmount  string `json:"debitAmount" binding:"amount"`
	CreditAmount string `json:"creditAmount" binding:"amount"`
}

// EntryHeaderDTO holds the transaction-level fields of a journal entry form.
// Description emptiness is reported by the entry validator, not by binding.
type EntryHeaderDTO struct {
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description" binding:"max=500"`
	Reference   string `json:"reference" binding:"max=100"`
	Notes       string `json:"notes" binding:"max=2000"`
}

// ValidateJournalRequest asks for the live balance and validation outcome of a form.
type ValidateJournalRequest struct {
	Header      EntryHeaderDTO   `json:"header"`
	Lines       []JournalLineDTO `json:"lines" binding:"dive"`
	RequireDate bool             `json:"requireDate"`
}

// BlurTarget names one amount field that lost focus.
type BlurTarget struct {
	LineID int         `json:"lineID" binding:"required"`
	Side   domain.Side `json:"side" binding:"required,oneof=DEBIT CREDIT"`
}

// SanitizeLinesRequest applies blur-time normalisation to the given fields.
// With no targets every non-empty amount is normalised, debit side first.
type SanitizeLinesRequest struct {
	Lines   []JournalLineDTO `json:"lines" binding:"dive"`
	Targets []BlurTarget     `json:"targets" binding:"dive"`
}

// SubmitJournalRequest creates a transaction from a journal entry form.
type SubmitJournalRequest struct {
	Kind    domain.EntryKind `json:"kind"`
	Header  EntryHeaderDTO   `json:"header"`
	Lines   []JournalLineDTO `json:"lines" binding:"dive"`
	DraftID string           `json:"draftID" binding:"omitempty,uuid"`
}

// ShortcutRequest is the two-field expense or revenue form.
type ShortcutRequest struct {
	Date              string `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string `json:"description" binding:"required,max=500"`
	Reference         string `json:"reference" binding:"max=100"`
	Notes             string `json:"notes" binding:"max=2000"`
	Amount            string `json:"amount" binding:"required,amount"`
	CategoryAccountID string `json:"categoryAccountID" binding:"required"`
	PaymentAccountID  string `json:"paymentAccountID" binding:"required"`
	DraftID           string `json:"draftID" binding:"omitempty,uuid"`
}

// BalanceResponse carries the running totals shown under a journal entry form.
type BalanceResponse struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"`
	IsBalanced  bool            `json:"isBalanced"`
}

// ValidationResponse reports the first failed check, if any.
type ValidationResponse struct {
	Valid      bool                      `json:"valid"`
	Code       accounting.ValidationCode `json:"code,omitempty"`
	Message    string                    `json:"message,omitempty"`
	Difference *decimal.Decimal          `json:"difference,omitempty"`
}

// PreviewResponse is the answer to a ValidateJournalRequest.
type PreviewResponse struct {
	Balance    BalanceResponse    `json:"balance"`
	Validation ValidationResponse `json:"validation"`
}

// LinesResponse returns normalised lines together with their balance.
type LinesResponse struct {
	Lines   []JournalLineDTO `json:"lines"`
	Balance BalanceResponse  `json:"balance"`
}

// ToHeader converts the header DTO to the domain header.
func (h EntryHeaderDTO) ToHeader() domain.EntryHeader {
	return domain.EntryHeader{
		Date:        h.Date,
		Description: h.Description,
		Reference:   h.Reference,
		Notes:       h.Notes,
	}
}

// ToHeader builds the entry header of a shortcut form.
func (r ShortcutRequest) ToHeader() domain.EntryHeader {
	return domain.EntryHeader{
		Date:        r.Date,
		Description: r.Description,
		Reference:   r.Reference,
		Notes:       r.Notes,
	}
}

// ToShortcutInput extracts the line-building part of a shortcut form.
func (r ShortcutRequest) ToShortcutInput() accounting.ShortcutInput {
	return accounting.ShortcutInput{
		Amount:            r.Amount,
		CategoryAccountID: r.CategoryAccountID,
		PaymentAccountID:  r.PaymentAccountID,
		Description:       r.Description,
	}
}

func FromHeader(h domain.EntryHeader) EntryHeaderDTO {
	return EntryHeaderDTO{
		Date:        h.Date,
		Description: h.Description,
		Reference:   h.Reference,
		Notes:       h.Notes,
	}
}

// ToLines converts line DTOs to domain lines.
func ToLines(in []JournalLineDTO) []domain.JournalLine {
	out := make([]domain.JournalLine, len(in))
	for i, l := range in {
		out[i] = domain.JournalLine{
			ID:           l.ID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return out
}

// FromLines converts domain lines to line DTOs.
func FromLines(in []domain.JournalLine) []JournalLineDTO {
	out := make([]JournalLineDTO, len(in))
	for i, l := range in {
		out[i] = JournalLineDTO{
			ID:           l.ID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return out
}

func ToBalanceResponse(b accounting.Balance) BalanceResponse {
	return BalanceResponse{
		TotalDebit:  b.TotalDebit,
		TotalCredit: b.TotalCredit,
		Difference:  b.Difference,
		IsBalanced:  b.IsBalanced(),
	}
}

// ToValidationResponse converts the result of accounting.Validate.
func ToValidationResponse(verr *accounting.ValidationError) ValidationResponse {
	if verr == nil {
		return ValidationResponse{Valid: true}
	}
	res := ValidationResponse{Code: verr.Code, Message: verr.Message()}
	if verr.Code == accounting.CodeUnbalanced {
		diff := verr.Difference
		res.Difference = &diff
	}
	return res
}

func ToPreviewResponse(p accounting.Preview) PreviewResponse {
	return PreviewResponse{
		Balance:    ToBalanceResponse(p.Balance),
		Validation: ToValidationResponse(p.Validation),
	}
}

func ToLinesResponse(lines []domain.JournalLine) LinesResponse {
	return LinesResponse{
		Lines:   FromLines(lines),
		Balance: ToBalanceResponse(accounting.CalculateBalance(lines)),
	}
}
