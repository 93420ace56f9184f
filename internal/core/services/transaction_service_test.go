package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedTransaction(reconciled bool) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: "tx-1",
		CompanyID:     "comp-1",
		Date:          "2024-02-29",
		Description:   "Groceries",
		SourceType:    domain.SourceExpense,
		IsReconciled:  reconciled,
		Amount:        decimal.RequireFromString("25.5"),
		Entries: []domain.TransactionEntry{
			{AccountID: "rent", Debit: decimal.RequireFromString("25.5")},
			{AccountID: "cash", Credit: decimal.RequireFromString("25.5")},
		},
	}
}

func TestTransactionService_GetTransaction_RehydratesLines(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	svc := services.NewTransactionService(backend, nil)
	backend.On("GetTransaction", ctx, "backend-token", "comp-1", "tx-1").Return(storedTransaction(false), nil)

	tx, lines, err := svc.GetTransaction(ctx, companySession(domain.RoleMember), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.TransactionID)
	require.Len(t, lines, 2)
	assert.Equal(t, "25.50", lines[0].DebitAmount)
	assert.Equal(t, "", lines[0].CreditAmount)
	assert.Equal(t, "25.50", lines[1].CreditAmount)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 2, lines[1].ID)
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	req := dto.UpdateTransactionRequest{
		Header: dto.EntryHeaderDTO{Description: "Groceries and snacks"},
		Lines: []dto.JournalLineDTO{
			{ID: 1, AccountID: "rent", DebitAmount: "30"},
			{ID: 2, AccountID: "cash", CreditAmount: "30"},
		},
	}

	t.Run("blank date keeps the stored one", func(t *testing.T) {
		backend := new(MockBackend)
		tracker := new(MockTracker)
		svc := services.NewTransactionService(backend, tracker)
		backend.On("GetTransaction", ctx, "backend-token", "comp-1", "tx-1").Return(storedTransaction(false), nil)
		backend.On("UpdateTransaction", ctx, "backend-token", "tx-1", mock.MatchedBy(func(tx domain.NewTransaction) bool {
			return tx.Date == "2024-02-29" && tx.SourceType == domain.SourceExpense && tx.Description == "Groceries and snacks"
		})).Return(&domain.Transaction{TransactionID: "tx-1"}, nil)
		tracker.On("Enqueue", "user-1", mock.Anything, mock.Anything).Return()

		_, err := svc.UpdateTransaction(ctx, companySession(domain.RoleMember), "tx-1", req)
		require.NoError(t, err)
		backend.AssertExpectations(t)
	})

	t.Run("reconciled transactions are locked", func(t *testing.T) {
		backend := new(MockBackend)
		svc := services.NewTransactionService(backend, nil)
		backend.On("GetTransaction", ctx, "backend-token", "comp-1", "tx-1").Return(storedTransaction(true), nil)

		_, err := svc.UpdateTransaction(ctx, companySession(domain.RoleMember), "tx-1", req)
		assert.ErrorIs(t, err, apperrors.ErrReconciled)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.ErrorIs(t, svc.DeleteTransaction(ctx, companySession(domain.RoleMember), "tx-1"), apperrors.ErrReconciled)
		backend.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		backend.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionService_ListTransactions_Paginates(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	svc := services.NewTransactionService(backend, nil)
	session := companySession(domain.RoleMember)

	backend.On("ListTransactions", ctx, "backend-token", "comp-1", 20, 0).
		Return(&domain.TransactionPage{Total: 45, Limit: 20, Offset: 0}, nil)
	backend.On("ListTransactions", ctx, "backend-token", "comp-1", 20, 40).
		Return(&domain.TransactionPage{Total: 45, Limit: 20, Offset: 40}, nil)

	page, next, err := svc.ListTransactions(ctx, session, dto.ListTransactionsParams{Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, page.Transactions)
	assert.Equal(t, pagination.EncodeOffsetToken("comp-1", 20), next)

	_, next, err = svc.ListTransactions(ctx, session, dto.ListTransactionsParams{
		Limit:     20,
		NextToken: pagination.EncodeOffsetToken("comp-1", 40),
	})
	require.NoError(t, err)
	assert.Empty(t, next)

	_, _, err = svc.ListTransactions(ctx, session, dto.ListTransactionsParams{
		Limit:     20,
		NextToken: pagination.EncodeOffsetToken("comp-2", 20),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
