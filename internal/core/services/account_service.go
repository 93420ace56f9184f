package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
)

// accountService implements the AccountSvcFacade over the backend's chart of accounts.
type accountService struct {
	BaseService
	backend gateways.BackendAccountGateway
	kinds   *accounting.KindRegistry
}

func NewAccountService(backend gateways.BackendAccountGateway, kinds *accounting.KindRegistry) portssvc.AccountSvcFacade {
	return &accountService{backend: backend, kinds: kinds}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, session *domain.Session, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, err
	}

	var kind *accounting.KindConfig
	if params.Kind != "" {
		if params.Side == "" {
			return nil, apperrors.NewBadRequestError("side is required when filtering by kind")
		}
		k, err := s.kinds.Get(params.Kind)
		if err != nil {
			return nil, err
		}
		kind = &k
	}

	accounts, err := s.backend.ListAccounts(ctx, session.BackendToken, session.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", session.CompanyID))
		return nil, err
	}

	filtered := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if params.AccountType != "" && acc.AccountType != params.AccountType {
			continue
		}
		if params.ActiveOnly && !acc.IsActive {
			continue
		}
		filtered = append(filtered, acc)
	}
	if kind != nil {
		filtered = kind.FilterAccounts(params.Side, filtered)
	}

	s.LogDebug(ctx, "Accounts listed",
		slog.Int("count", len(filtered)),
		slog.String("company_id", session.CompanyID))
	return filtered, nil
}

func (s *accountService) AccountsByID(ctx context.Context, session *domain.Session) (map[string]domain.Account, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, err
	}
	accounts, err := s.backend.ListAccounts(ctx, session.BackendToken, session.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts", slog.String("company_id", session.CompanyID))
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}
	return byID, nil
}

func (s *accountService) CreateAccount(ctx context.Context, session *domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequireWriter(session); err != nil {
		return nil, err
	}
	account, err := s.backend.CreateAccount(ctx, session.BackendToken, session.CompanyID, req.ToAccountInput())
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("company_id", session.CompanyID))
		return nil, err
	}
	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("company_id", session.CompanyID))
	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, session *domain.Session, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.RequireWriter(session); err != nil {
		return nil, err
	}

	byID, err := s.AccountsByID(ctx, session)
	if err != nil {
		return nil, err
	}
	current, ok := byID[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	account, err := s.backend.UpdateAccount(ctx, session.BackendToken, session.CompanyID, accountID, req.ApplyTo(current))
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error {
	if err := s.RequireWriter(session); err != nil {
		return err
	}
	if err := s.backend.DeleteAccount(ctx, session.BackendToken, session.CompanyID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
