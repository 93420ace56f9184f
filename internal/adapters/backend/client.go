// Package backend is the REST client for the external accounting backend that owns
// companies, accounts and transactions.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
)

const maxResponseBytes = 4 << 20

// Config configures a Client.
type Config struct {
	BaseURL            string
	Timeout            time.Duration // per call; default 15s
	BreakerMaxFailures uint32        // consecutive failures that open the breaker; default 5
	BreakerTimeout     time.Duration // how long the breaker stays open; default 30s
	HTTPClient         *http.Client  // optional, for tests and custom transports
	Logger             *slog.Logger
}

// Client talks to the accounting backend. Calls run through a circuit breaker that only
// counts transport failures and 5xx answers; client errors leave it closed.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

var _ gateways.AccountingBackendFacade = (*Client)(nil)

// NewClient creates a backend client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL cannot be empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	maxFailures := cfg.BreakerMaxFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "accounting-backend",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !countsAsOutage(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.logger.Warn("Backend circuit breaker state changed",
				slog.String("breaker", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	return c, nil
}

// APIError is a non-success answer from the backend.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// UserMessage is the backend's own explanation, safe to show to the user.
func (e *APIError) UserMessage() string {
	return e.Message
}

// Unwrap maps the backend status to the matching application sentinel.
func (e *APIError) Unwrap() error {
	if strings.Contains(strings.ToUpper(e.Code), "RECONCILED") {
		return apperrors.ErrReconciled
	}
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return apperrors.ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return apperrors.ErrConflict
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return apperrors.ErrValidation
	case e.StatusCode >= http.StatusInternalServerError:
		return apperrors.ErrBackendUnavailable
	default:
		return apperrors.ErrInternal
	}
}

// countsAsOutage reports whether err says the backend is unhealthy rather than that the
// request was wrong.
func countsAsOutage(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string // empty for unauthenticated calls
	body   any
}

// call sends req through the breaker and decodes the envelope's data into out (if non-nil).
func (c *Client) call(ctx context.Context, req request, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, req, out)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Warn("Backend call rejected by circuit breaker", slog.String("method", req.method), slog.String("path", req.path))
		return fmt.Errorf("%w: circuit breaker %v", apperrors.ErrBackendUnavailable, err)
	default:
		return err
	}
}

func (c *Client) roundTrip(ctx context.Context, req request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to encode backend request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.clientFor(ctx, req.token).Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewAppError(http.StatusGatewayTimeout, "accounting backend timed out", apperrors.ErrBackendUnavailable)
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Backend call",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", apperrors.ErrBackendUnavailable, err)
	}
	return decodeEnvelope(resp.StatusCode, raw, out)
}

// clientFor returns an HTTP client that adds the caller's bearer token, reusing the
// configured transport.
func (c *Client) clientFor(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

func decodeEnvelope(status int, raw []byte, out any) error {
	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if status >= http.StatusBadRequest {
				return &APIError{StatusCode: status, Message: http.StatusText(status)}
			}
			return fmt.Errorf("%w: malformed backend response: %v", apperrors.ErrInternal, err)
		}
	} else if status < http.StatusBadRequest {
		// 204 and friends
		env.Success = true
	}

	if status >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
		if status < http.StatusBadRequest {
			// success=false with a 2xx status is still a rejection
			apiErr.StatusCode = http.StatusUnprocessableEntity
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode backend data: %v", apperrors.ErrInternal, err)
	}
	return nil
}

func requireToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: missing backend token", apperrors.ErrUnauthorized)
	}
	return nil
}
