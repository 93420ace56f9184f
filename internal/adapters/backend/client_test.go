package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{
		BaseURL:            srv.URL + "/api/v1",
		Timeout:            2 * time.Second,
		BreakerMaxFailures: 2,
		BreakerTimeout:     time.Minute,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

func TestCreateTransaction_WireFormat(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"id":          "tx-1",
			"companyId":   "comp-1",
			"date":        "2024-03-01T00:00:00Z",
			"description": "Rent",
			"sourceType":  "MANUAL",
			"entries": []map[string]any{
				{"accountId": "rent", "debit": 1500, "credit": 0},
				{"accountId": "bank", "debit": 0, "credit": 1500},
			},
		})
	})

	tx, err := c.CreateTransaction(context.Background(), "backend-token", domain.NewTransaction{
		CompanyID:   "comp-1",
		Date:        "2024-03-01",
		Description: "Rent",
		SourceType:  domain.SourceManual,
		Entries: []domain.TransactionEntry{
			{AccountID: "rent", Debit: decimal.RequireFromString("1500"), Description: "Rent"},
			{AccountID: "bank", Credit: decimal.RequireFromString("1500"), Description: "Rent"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "comp-1", got["companyId"])
	assert.Equal(t, "MANUAL", got["sourceType"])
	entries := got["entries"].([]any)
	require.Len(t, entries, 2)
	first := entries[0].(map[string]any)
	assert.Equal(t, "rent", first["accountId"])
	assert.Equal(t, 1500.0, first["debit"], "amounts are JSON numbers")
	assert.Equal(t, 0.0, first["credit"])

	assert.Equal(t, "tx-1", tx.TransactionID)
	assert.Equal(t, "2024-03-01", tx.Date)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1500)), "amount falls back to the debit total")
}

func TestCall_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, "TOKEN_EXPIRED", apperrors.ErrUnauthorized},
		{"not found", http.StatusNotFound, "NOT_FOUND", apperrors.ErrNotFound},
		{"validation", http.StatusUnprocessableEntity, "UNBALANCED", apperrors.ErrValidation},
		{"reconciled", http.StatusConflict, "TRANSACTION_RECONCILED", apperrors.ErrReconciled},
		{"forbidden", http.StatusForbidden, "", apperrors.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeFailure(w, tt.status, tt.code, "backend says no")
			})
			_, err := c.GetTransaction(context.Background(), "tok", "comp-1", "tx-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "backend says no", apiErr.Message)
		})
	}
}

func TestCall_SuccessFalseIsRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusOK, "INVALID_ENTRY", "entries do not balance")
	})
	_, err := c.ListCompanies(context.Background(), "tok")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCall_BreakerOpensOnServerErrorsOnly(t *testing.T) {
	var hits atomic.Int32
	status := atomic.Int32{}
	status.Store(http.StatusBadRequest)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeFailure(w, int(status.Load()), "", "nope")
	})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := c.ListAccounts(ctx, "tok", "comp-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.Equal(t, int32(5), hits.Load(), "client errors never open the breaker")

	status.Store(http.StatusInternalServerError)
	for i := 0; i < 2; i++ {
		_, err := c.ListAccounts(ctx, "tok", "comp-1")
		assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	}
	assert.Equal(t, int32(7), hits.Load())

	_, err := c.ListAccounts(ctx, "tok", "comp-1")
	assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	assert.Equal(t, int32(7), hits.Load(), "open breaker short-circuits")
}

func TestLogin_NoBearerHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body loginBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body.Email)
		writeEnvelope(w, http.StatusOK, map[string]any{
			"token":     "backend-token",
			"expiresAt": "2030-01-01T00:00:00Z",
			"user":      map[string]string{"id": "u1", "name": "Ada", "email": "ada@example.com"},
		})
	})
	res, err := c.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", res.Token)
	assert.Equal(t, "u1", res.User.UserID)
}

func TestListTransactions_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "comp-1", r.URL.Query().Get("companyId"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"transactions": []map[string]any{{"id": "tx-1", "amount": "12.50"}},
			"total":        21,
		})
	})
	page, err := c.ListTransactions(context.Background(), "tok", "comp-1", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 20, page.Offset)
	require.Len(t, page.Transactions, 1)
	assert.True(t, page.Transactions[0].Amount.Equal(decimal.RequireFromString("12.5")))
}

func TestDeleteAccount_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/companies/comp-1/accounts/acc%2F1", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.DeleteAccount(context.Background(), "tok", "comp-1", "acc/1"))
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	_, err := c.ListCompanies(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
