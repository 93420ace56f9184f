package backend

import (
	"context"
	"net/http"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginBody struct {
	IDToken string `json:"idToken"`
}

// Login exchanges email/password credentials for a backend token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var out wireAuth
	if err := c.call(ctx, request{method: http.MethodPost, path: "/auth/login", body: loginBody{Email: email, Password: password}}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// LoginWithGoogle exchanges a verified Google ID token for a backend token.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	var out wireAuth
	if err := c.call(ctx, request{method: http.MethodPost, path: "/auth/google", body: googleLoginBody{IDToken: idToken}}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Logout revokes a backend token.
func (c *Client) Logout(ctx context.Context, token string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.call(ctx, request{method: http.MethodPost, path: "/auth/logout", token: token}, nil)
}
