package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

func accountsPath(companyID string) string {
	return "/companies/" + url.PathEscape(companyID) + "/accounts"
}

func accountPath(companyID, accountID string) string {
	return accountsPath(companyID) + "/" + url.PathEscape(accountID)
}

func (c *Client) ListAccounts(ctx context.Context, token, companyID string) ([]domain.Account, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out []wireAccount
	if err := c.call(ctx, request{method: http.MethodGet, path: accountsPath(companyID), token: token}, &out); err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, len(out))
	for i, w := range out {
		accounts[i] = w.toDomain()
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, token, companyID string, in domain.AccountInput) (*domain.Account, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireAccount
	req := request{method: http.MethodPost, path: accountsPath(companyID), token: token, body: toWireAccountInput(in)}
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}
	acc := out.toDomain()
	return &acc, nil
}

func (c *Client) UpdateAccount(ctx context.Context, token, companyID, accountID string, in domain.AccountInput) (*domain.Account, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireAccount
	req := request{method: http.MethodPut, path: accountPath(companyID, accountID), token: token, body: toWireAccountInput(in)}
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}
	acc := out.toDomain()
	return &acc, nil
}

func (c *Client) DeleteAccount(ctx context.Context, token, companyID, accountID string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.call(ctx, request{method: http.MethodDelete, path: accountPath(companyID, accountID), token: token}, nil)
}
