package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

func transactionPath(transactionID string) string {
	return "/transactions/" + url.PathEscape(transactionID)
}

func companyQuery(companyID string) url.Values {
	q := url.Values{}
	q.Set("companyId", companyID)
	return q
}

// CreateTransaction submits an assembled transaction (POST /transactions).
func (c *Client) CreateTransaction(ctx context.Context, token string, tx domain.NewTransaction) (*domain.Transaction, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireTransaction
	req := request{method: http.MethodPost, path: "/transactions", token: token, body: toWireTransactionRequest(tx)}
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}
	created := out.toDomain()
	return &created, nil
}

func (c *Client) GetTransaction(ctx context.Context, token, companyID, transactionID string) (*domain.Transaction, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireTransaction
	req := request{method: http.MethodGet, path: transactionPath(transactionID), query: companyQuery(companyID), token: token}
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}
	tx := out.toDomain()
	return &tx, nil
}

func (c *Client) ListTransactions(ctx context.Context, token, companyID string, limit, offset int) (*domain.TransactionPage, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	q := companyQuery(companyID)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var out wireTransactionPage
	if err := c.call(ctx, request{method: http.MethodGet, path: "/transactions", query: q, token: token}, &out); err != nil {
		return nil, err
	}
	page := &domain.TransactionPage{
		Transactions: make([]domain.Transaction, len(out.Transactions)),
		Total:        out.Total,
		Limit:        out.Limit,
		Offset:       out.Offset,
	}
	if page.Limit == 0 {
		page.Limit = limit
	}
	if page.Offset == 0 {
		page.Offset = offset
	}
	for i, w := range out.Transactions {
		page.Transactions[i] = w.toDomain()
	}
	return page, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, token, transactionID string, tx domain.NewTransaction) (*domain.Transaction, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var out wireTransaction
	req := request{method: http.MethodPut, path: transactionPath(transactionID), token: token, body: toWireTransactionRequest(tx)}
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}
	updated := out.toDomain()
	return &updated, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, token, companyID, transactionID string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.call(ctx, request{method: http.MethodDelete, path: transactionPath(transactionID), query: companyQuery(companyID), token: token}, nil)
}
