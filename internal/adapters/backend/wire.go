package backend

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Wire shapes of the backend API. They follow the backend's field names
// (companyId, accountId, ...) and stay private to this package.

type wireUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type wireAuth struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      wireUser  `json:"user"`
}

type wireCompany struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DefaultCurrency string    `json:"defaultCurrency"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type wireAccount struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	ParentID    string    `json:"parentId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type wireAccountInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// wireEntryOut sends amounts as JSON numbers with exactly two decimals.
type wireEntryOut struct {
	AccountID   string      `json:"accountId"`
	Debit       json.Number `json:"debit"`
	Credit      json.Number `json:"credit"`
	Description string      `json:"description,omitempty"`
}

type wireEntryIn struct {
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

type wireTransactionRequest struct {
	CompanyID   string         `json:"companyId"`
	Date        string         `json:"date,omitempty"`
	Description string         `json:"description"`
	Reference   string         `json:"reference,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	SourceType  string         `json:"sourceType"`
	Entries     []wireEntryOut `json:"entries"`
}

type wireTransaction struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"companyId"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	Notes        string          `json:"notes"`
	SourceType   string          `json:"sourceType"`
	IsReconciled bool            `json:"isReconciled"`
	Amount       decimal.Decimal `json:"amount"`
	Entries      []wireEntryIn   `json:"entries"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type wireTransactionPage struct {
	Transactions []wireTransaction `json:"transactions"`
	Total        int               `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

func (w wireAuth) toDomain() *domain.AuthResult {
	return &domain.AuthResult{
		Token:     w.Token,
		ExpiresAt: w.ExpiresAt,
		User:      domain.User{UserID: w.User.ID, Name: w.User.Name, Email: w.User.Email},
	}
}

func (w wireCompany) toDomain() domain.Company {
	return domain.Company{
		CompanyID:       w.ID,
		Name:            w.Name,
		DefaultCurrency: w.DefaultCurrency,
		Role:            domain.CompanyRole(w.Role),
		AuditFields:     domain.AuditFields{CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt},
	}
}

func (w wireAccount) toDomain() domain.Account {
	return domain.Account{
		AccountID:       w.ID,
		CompanyID:       w.CompanyID,
		Code:            w.Code,
		Name:            w.Name,
		AccountType:     domain.AccountType(w.Type),
		Description:     w.Description,
		ParentAccountID: w.ParentID,
		IsActive:        w.IsActive,
		AuditFields:     domain.AuditFields{CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt},
	}
}

func toWireAccountInput(in domain.AccountInput) wireAccountInput {
	return wireAccountInput{
		Code:        in.Code,
		Name:        in.Name,
		Type:        string(in.AccountType),
		Description: in.Description,
		ParentID:    in.ParentAccountID,
		IsActive:    in.IsActive,
	}
}

func toWireTransactionRequest(tx domain.NewTransaction) wireTransactionRequest {
	entries := make([]wireEntryOut, len(tx.Entries))
	for i, e := range tx.Entries {
		entries[i] = wireEntryOut{
			AccountID:   e.AccountID,
			Debit:       json.Number(e.Debit.StringFixed(2)),
			Credit:      json.Number(e.Credit.StringFixed(2)),
			Description: e.Description,
		}
	}
	return wireTransactionRequest{
		CompanyID:   tx.CompanyID,
		Date:        tx.Date,
		Description: tx.Description,
		Reference:   tx.Reference,
		Notes:       tx.Notes,
		SourceType:  string(tx.SourceType),
		Entries:     entries,
	}
}

func (w wireTransaction) toDomain() domain.Transaction {
	entries := make([]domain.TransactionEntry, len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = domain.TransactionEntry{
			AccountID:   e.AccountID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
	}
	amount := w.Amount
	if amount.IsZero() {
		for _, e := range entries {
			amount = amount.Add(e.Debit)
		}
	}
	return domain.Transaction{
		TransactionID: w.ID,
		CompanyID:     w.CompanyID,
		Date:          normalizeDate(w.Date),
		Description:   w.Description,
		Reference:     w.Reference,
		Notes:         w.Notes,
		SourceType:    domain.SourceType(w.SourceType),
		IsReconciled:  w.IsReconciled,
		Amount:        amount,
		Entries:       entries,
		AuditFields:   domain.AuditFields{CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt},
	}
}

// normalizeDate cuts an RFC 3339 timestamp down to its YYYY-MM-DD date.
func normalizeDate(s string) string {
	if len(s) > len("2006-01-02") {
		return s[:len("2006-01-02")]
	}
	return s
}
