package backend

import (
	"context"
	"net/http"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

type createCompanyBody struct {
	Name            string `json:"name"`
	DefaultCurrency string `json:"defaultCurrency,omitempty"`
}

// ListCompanies returns the companies the token's user is a member of.
func (c *Client) ListCompanies(ctx context.Context, token string) ([]domain.Company, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out []wireCompany
	if err := c.call(ctx, request{method: http.MethodGet, path: "/companies", token: token}, &out); err != nil {
		return nil, err
	}
	companies := make([]domain.Company, len(out))
	for i, w := range out {
		companies[i] = w.toDomain()
	}
	return companies, nil
}

// CreateCompany creates a company owned by the token's user.
func (c *Client) CreateCompany(ctx context.Context, token string, name, defaultCurrency string) (*domain.Company, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireCompany
	body := createCompanyBody{Name: name, DefaultCurrency: defaultCurrency}
	if err := c.call(ctx, request{method: http.MethodPost, path: "/companies", token: token, body: body}, &out); err != nil {
		return nil, err
	}
	company := out.toDomain()
	return &company, nil
}
