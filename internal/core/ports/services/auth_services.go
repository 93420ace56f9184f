package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// SessionAuthenticator creates and tears down sessions.
type SessionAuthenticator interface {
	// Login authenticates against the backend, persists a session and returns it with a signed token.
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)

	// LoginWithGoogleIDToken does the same for an already verified Google ID token.
	LoginWithGoogleIDToken(ctx context.Context, idToken string) (*domain.Session, string, error)

	// Logout deletes the session and revokes the backend token on a best-effort basis.
	Logout(ctx context.Context, session *domain.Session) error
}

// SessionResolver turns request credentials back into a session.
type SessionResolver interface {
	// ResolveToken validates a signed session token and hydrates the session it names.
	ResolveToken(ctx context.Context, token string) (*domain.Session, error)

	// Hydrate loads a session from storage, decrypting its backend token.
	// Missing or expired sessions yield apperrors.ErrUnauthorized.
	Hydrate(ctx context.Context, sessionID string) (*domain.Session, error)
}

// AuthSvcFacade combines all session service interfaces
type AuthSvcFacade interface {
	SessionAuthenticator
	SessionResolver
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// Enabled reports whether Google sign-in is configured.
	Enabled() bool
	// GenerateStateString creates a secure random string used as the OAuth CSRF token.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
