package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
)

// CompanySvcFacade defines company operations for the session user.
type CompanySvcFacade interface {
	ListCompanies(ctx context.Context, session *domain.Session) ([]domain.Company, error)
	CreateCompany(ctx context.Context, session *domain.Session, req dto.CreateCompanyRequest) (*domain.Company, error)

	// SelectCompany makes companyID the session's active company and returns the updated session.
	// The company must be one of the user's companies.
	SelectCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Session, error)
}
