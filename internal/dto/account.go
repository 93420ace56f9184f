package dto

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,max=32"`
	Name            string             `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description     string             `json:"description"`
	ParentAccountID string             `json:"parentAccountID"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code        *string `json:"code" binding:"omitempty,max=32"`
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
// Kind and Side narrow the list to the accounts an entry kind allows on that side.
type ListAccountsParams struct {
	AccountType domain.AccountType `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Kind        domain.EntryKind   `form:"kind"`
	Side        domain.Side        `form:"side" binding:"omitempty,oneof=DEBIT CREDIT"`
	ActiveOnly  bool               `form:"activeOnly"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	Description     string             `json:"description"`
	ParentAccountID string             `json:"parentAccountID,omitempty"`
	IsActive        bool               `json:"isActive"`
}

// ListAccountsResponse wraps a chart of accounts listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountInput converts a create request to the backend input shape.
func (r CreateAccountRequest) ToAccountInput() domain.AccountInput {
	return domain.AccountInput{
		Code:            r.Code,
		Name:            r.Name,
		AccountType:     r.AccountType,
		Description:     r.Description,
		ParentAccountID: r.ParentAccountID,
	}
}

// ApplyTo overlays the provided fields onto the current account state.
func (r UpdateAccountRequest) ApplyTo(acc domain.Account) domain.AccountInput {
	in := domain.AccountInput{
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		Description:     acc.Description,
		ParentAccountID: acc.ParentAccountID,
		IsActive:        &acc.IsActive,
	}
	if r.Code != nil {
		in.Code = *r.Code
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Description != nil {
		in.Description = *r.Description
	}
	if r.IsActive != nil {
		in.IsActive = r.IsActive
	}
	return in
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		Description:     acc.Description,
		ParentAccountID: acc.ParentAccountID,
		IsActive:        acc.IsActive,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a ListAccountsResponse
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		res.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
