package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
)

// TransactionReaderSvc defines read operations for recorded transactions
type TransactionReaderSvc interface {
	// GetTransaction returns a transaction and the editable lines rehydrated from its entries.
	GetTransaction(ctx context.Context, session *domain.Session, transactionID string) (*domain.Transaction, []domain.JournalLine, error)

	// ListTransactions returns one page of the company's transactions and the token of the next page.
	ListTransactions(ctx context.Context, session *domain.Session, params dto.ListTransactionsParams) (*domain.TransactionPage, string, error)
}

// TransactionWriterSvc defines write operations for recorded transactions.
// Reconciled transactions reject both with apperrors.ErrReconciled.
type TransactionWriterSvc interface {
	UpdateTransaction(ctx context.Context, session *domain.Session, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, session *domain.Session, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
