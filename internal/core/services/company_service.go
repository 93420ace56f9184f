package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils"
)

type companyService struct {
	BaseService
	backend  gateways.BackendCompanyGateway
	sessions portsrepo.SessionWriter
	tracker  utils.EventTracker
	now      func() time.Time
}

// NewCompanyService creates a company service. tracker may be nil.
func NewCompanyService(backend gateways.BackendCompanyGateway, sessions portsrepo.SessionWriter, tracker utils.EventTracker) portssvc.CompanySvcFacade {
	return &companyService{
		backend:  backend,
		sessions: sessions,
		tracker:  tracker,
		now:      time.Now,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) ListCompanies(ctx context.Context, session *domain.Session) ([]domain.Company, error) {
	companies, err := s.backend.ListCompanies(ctx, session.BackendToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies", slog.String("user_id", session.UserID))
		return nil, err
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) CreateCompany(ctx context.Context, session *domain.Session, req dto.CreateCompanyRequest) (*domain.Company, error) {
	company, err := s.backend.CreateCompany(ctx, session.BackendToken, req.Name, req.DefaultCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("user_id", session.UserID))
		return nil, err
	}
	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return company, nil
}

func (s *companyService) SelectCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Session, error) {
	companies, err := s.ListCompanies(ctx, session)
	if err != nil {
		return nil, err
	}

	var selected *domain.Company
	for i := range companies {
		if companies[i].CompanyID == companyID {
			selected = &companies[i]
			break
		}
	}
	if selected == nil {
		s.LogDebug(ctx, "Company not among the user's companies", slog.String("company_id", companyID))
		return nil, fmt.Errorf("company %s: %w", companyID, apperrors.ErrNotFound)
	}

	now := s.now()
	if err := s.sessions.UpdateSessionCompany(ctx, session.SessionID, *selected, now); err != nil {
		s.LogError(ctx, err, "Failed to update session company",
			slog.String("session_id", session.SessionID),
			slog.String("company_id", companyID))
		return nil, err
	}

	updated := *session
	updated.CompanyID = selected.CompanyID
	updated.CompanyName = selected.Name
	updated.Role = selected.Role
	updated.UpdatedAt = now

	if s.tracker != nil {
		s.tracker.Enqueue(session.UserID, utils.EventCompanySelected, map[string]any{"company_id": companyID})
	}
	s.LogInfo(ctx, "Company selected",
		slog.String("session_id", session.SessionID),
		slog.String("company_id", companyID))
	return &updated, nil
}
