package dto

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a new company.
type CreateCompanyRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	DefaultCurrency string `json:"defaultCurrency" binding:"omitempty,len=3,uppercase"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID       string             `json:"companyID"`
	Name            string             `json:"name"`
	DefaultCurrency string             `json:"defaultCurrency,omitempty"`
	Role            domain.CompanyRole `json:"role"`
}

// ListCompaniesResponse wraps the companies of the session user.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		DefaultCurrency: c.DefaultCurrency,
		Role:            c.Role,
	}
}

func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := ListCompaniesResponse{Companies: make([]CompanyResponse, len(companies))}
	for i := range companies {
		res.Companies[i] = ToCompanyResponse(&companies[i])
	}
	return res
}
