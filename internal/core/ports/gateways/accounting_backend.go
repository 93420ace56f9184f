package gateways

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// Every method except the login calls takes the caller's backend bearer token.

// BackendAuthGateway defines authentication calls against the accounting backend.
type BackendAuthGateway interface {
	// Login exchanges email/password credentials for a backend token.
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)

	// LoginWithGoogle exchanges a verified Google ID token for a backend token.
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error)

	// Logout revokes a backend token.
	Logout(ctx context.Context, token string) error
}

// BackendCompanyGateway defines company calls against the accounting backend.
type BackendCompanyGateway interface {
	// ListCompanies returns the companies the token's user is a member of.
	ListCompanies(ctx context.Context, token string) ([]domain.Company, error)

	// CreateCompany creates a company owned by the token's user.
	CreateCompany(ctx context.Context, token string, name, defaultCurrency string) (*domain.Company, error)
}

// BackendAccountGateway defines chart-of-accounts calls against the accounting backend.
type BackendAccountGateway interface {
	ListAccounts(ctx context.Context, token, companyID string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, token, companyID string, in domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, token, companyID, accountID string, in domain.AccountInput) (*domain.Account, error)
	// DeleteAccount deactivates an account; the backend keeps it for historical entries.
	DeleteAccount(ctx context.Context, token, companyID, accountID string) error
}

// BackendTransactionGateway defines transaction calls against the accounting backend.
type BackendTransactionGateway interface {
	CreateTransaction(ctx context.Context, token string, tx domain.NewTransaction) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, token, companyID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, token, companyID string, limit, offset int) (*domain.TransactionPage, error)
	UpdateTransaction(ctx context.Context, token, transactionID string, tx domain.NewTransaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, token, companyID, transactionID string) error
}

// AccountingBackendFacade combines all accounting backend gateways
type AccountingBackendFacade interface {
	BackendAuthGateway
	BackendCompanyGateway
	BackendAccountGateway
	BackendTransactionGateway
}
