package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// sessionService owns the session lifecycle: login creates a session, every request
// hydrates it, company selection updates it and logout tears it down.
type sessionService struct {
	BaseService
	cfg     *config.Config
	repo    portsrepo.SessionRepositoryFacade
	backend gateways.BackendAuthGateway
	cipher  *utils.TokenCipher
	now     func() time.Time
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(cfg *config.Config, repo portsrepo.SessionRepositoryFacade, backend gateways.BackendAuthGateway, cipher *utils.TokenCipher) portssvc.AuthSvcFacade {
	return &sessionService{
		cfg:     cfg,
		repo:    repo,
		backend: backend,
		cipher:  cipher,
		now:     time.Now,
	}
}

var _ portssvc.AuthSvcFacade = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.LogWarn(ctx, err, "Backend login failed", slog.String("email", email))
		return nil, "", err
	}
	return s.startSession(ctx, result)
}

func (s *sessionService) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*domain.Session, string, error) {
	result, err := s.backend.LoginWithGoogle(ctx, idToken)
	if err != nil {
		s.LogWarn(ctx, err, "Backend Google login failed")
		return nil, "", err
	}
	return s.startSession(ctx, result)
}

func (s *sessionService) startSession(ctx context.Context, result *domain.AuthResult) (*domain.Session, string, error) {
	if result == nil || result.Token == "" || result.User.UserID == "" {
		return nil, "", fmt.Errorf("backend login returned no token: %w", apperrors.ErrInternal)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	// never outlive the backend token we hold
	if !result.ExpiresAt.IsZero() && result.ExpiresAt.Before(expiresAt) {
		expiresAt = result.ExpiresAt
	}

	encrypted, err := s.cipher.Encrypt(result.Token)
	if err != nil {
		s.LogError(ctx, err, "Failed to encrypt backend token")
		return nil, "", fmt.Errorf("failed to secure session: %w", apperrors.ErrInternal)
	}

	session := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    result.User.UserID,
		UserName:  result.User.Name,
		Email:     result.User.Email,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
	}

	stored := session
	stored.BackendToken = encrypted
	if err := s.repo.SaveSession(ctx, stored); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.String("user_id", session.UserID))
		return nil, "", err
	}

	token, err := utils.GenerateSessionJWT(session.UserID, session.SessionID, s.cfg.JWTSecret, expiresAt, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("session_id", session.SessionID))
		return nil, "", fmt.Errorf("failed to sign session token: %w", apperrors.ErrInternal)
	}

	session.BackendToken = result.Token
	s.LogInfo(ctx, "Session started",
		slog.String("session_id", session.SessionID),
		slog.String("user_id", session.UserID))
	return &session, token, nil
}

func (s *sessionService) ResolveToken(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseSessionJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %v: %w", err, apperrors.ErrUnauthorized)
	}

	session, err := s.Hydrate(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.Subject {
		return nil, fmt.Errorf("session token subject mismatch: %w", apperrors.ErrUnauthorized)
	}
	return session, nil
}

func (s *sessionService) Hydrate(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("session %s not found: %w", sessionID, apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load session", slog.String("session_id", sessionID))
		return nil, err
	}

	if session.IsExpired(s.now()) {
		if delErr := s.repo.DeleteSession(ctx, sessionID); delErr != nil {
			s.LogWarn(ctx, delErr, "Failed to delete expired session", slog.String("session_id", sessionID))
		}
		return nil, fmt.Errorf("session %s expired: %w", sessionID, apperrors.ErrUnauthorized)
	}

	plain, err := s.cipher.Decrypt(session.BackendToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to decrypt backend token", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("session %s unreadable: %w", sessionID, apperrors.ErrUnauthorized)
	}
	session.BackendToken = plain
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.repo.DeleteSession(ctx, session.SessionID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to delete session", slog.String("session_id", session.SessionID))
		return err
	}

	if session.BackendToken != "" {
		if err := s.backend.Logout(ctx, session.BackendToken); err != nil {
			s.LogWarn(ctx, err, "Backend logout failed; local session removed anyway",
				slog.String("session_id", session.SessionID))
		}
	}

	s.LogInfo(ctx, "Session ended", slog.String("session_id", session.SessionID))
	return nil
}

// --- GoogleOAuthSvcFacade Implementation ---

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *googleOAuthService) Enabled() bool {
	return s.cfg.GoogleOAuthEnabled()
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %v: %w", err, apperrors.ErrUnauthorized)
	}
	return payload, nil
}
