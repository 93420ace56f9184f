package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/SscSPs/mma_web/internal/utils/pagination"
)

// transactionService implements the edit flow for recorded transactions.
type transactionService struct {
	BaseService
	backend gateways.BackendTransactionGateway
	tracker utils.EventTracker
}

func NewTransactionService(backend gateways.BackendTransactionGateway, tracker utils.EventTracker) portssvc.TransactionSvcFacade {
	return &transactionService{backend: backend, tracker: tracker}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, session *domain.Session, transactionID string) (*domain.Transaction, []domain.JournalLine, error) {
	tx, err := s.load(ctx, session, transactionID)
	if err != nil {
		return nil, nil, err
	}
	return tx, accounting.LineSetFromEntries(tx.Entries).Lines(), nil
}

func (s *transactionService) ListTransactions(ctx context.Context, session *domain.Session, params dto.ListTransactionsParams) (*domain.TransactionPage, string, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, "", err
	}

	offset := params.Offset
	if params.NextToken != "" {
		decoded, err := pagination.DecodeOffsetToken(params.NextToken, session.CompanyID)
		if err != nil {
			return nil, "", apperrors.NewBadRequestError(err.Error())
		}
		offset = decoded
	}

	page, err := s.backend.ListTransactions(ctx, session.BackendToken, session.CompanyID, params.Limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("company_id", session.CompanyID),
			slog.Int("limit", params.Limit),
			slog.Int("offset", offset))
		return nil, "", err
	}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}

	next := pagination.NextOffsetToken(session.CompanyID, offset, params.Limit, page.Total)
	return page, next, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, session *domain.Session, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireWriter(session); err != nil {
		return nil, err
	}
	current, err := s.loadEditable(ctx, session, transactionID)
	if err != nil {
		return nil, err
	}

	header := req.Header.ToHeader()
	lines := dto.ToLines(req.Lines)
	if err := accounting.Validate(header, lines, accounting.ValidateOptions{}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(header.Date) == "" {
		header.Date = current.Date
	}

	updateTx := accounting.AssembleTransaction(session.CompanyID, current.SourceType, header, lines)
	if err := accounting.CheckAssembled(updateTx.Entries); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateTransaction(ctx, session.BackendToken, transactionID, updateTx)
	if err != nil {
		s.LogError(ctx, err, "Backend rejected transaction update", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	if s.tracker != nil {
		s.tracker.Enqueue(session.UserID, utils.EventTransactionUpdated, map[string]any{
			"company_id":     session.CompanyID,
			"transaction_id": transactionID,
		})
	}
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, session *domain.Session, transactionID string) error {
	if err := s.RequireWriter(session); err != nil {
		return err
	}
	if _, err := s.loadEditable(ctx, session, transactionID); err != nil {
		return err
	}
	if err := s.backend.DeleteTransaction(ctx, session.BackendToken, session.CompanyID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) load(ctx context.Context, session *domain.Session, transactionID string) (*domain.Transaction, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, err
	}
	tx, err := s.backend.GetTransaction(ctx, session.BackendToken, session.CompanyID, transactionID)
	if err != nil {
		s.LogDebug(ctx, "Failed to get transaction",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return nil, err
	}
	if tx.CompanyID != "" && tx.CompanyID != session.CompanyID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return tx, nil
}

func (s *transactionService) loadEditable(ctx context.Context, session *domain.Session, transactionID string) (*domain.Transaction, error) {
	tx, err := s.load(ctx, session, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.IsReconciled {
		s.LogDebug(ctx, "Refusing to change reconciled transaction", slog.String("transaction_id", transactionID))
		return nil, apperrors.ErrReconciled
	}
	return tx, nil
}
