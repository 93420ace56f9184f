package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// ListAccounts returns the selected company's accounts, optionally filtered.
	ListAccounts(ctx context.Context, session *domain.Session, params dto.ListAccountsParams) ([]domain.Account, error)

	// AccountsByID returns the selected company's accounts keyed by ID.
	AccountsByID(ctx context.Context, session *domain.Session) (map[string]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, session *domain.Session, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, session *domain.Session, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
