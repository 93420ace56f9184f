package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	backend *MockBackend
	repo    *MockSessionRepository
	cipher  *utils.TokenCipher
	cfg     *config.Config
	ctx     context.Context
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.backend = new(MockBackend)
	s.repo = new(MockSessionRepository)
	cipher, err := utils.NewTokenCipher("test-session-key")
	s.Require().NoError(err)
	s.cipher = cipher
	s.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "mma-web-test",
	}
	s.ctx = context.Background()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) authResult() *domain.AuthResult {
	return &domain.AuthResult{
		Token: "plain-backend-token",
		User:  domain.User{UserID: "user-1", Name: "Jo", Email: "jo@example.com"},
	}
}

func (s *SessionServiceTestSuite) TestLogin_PersistsEncryptedTokenAndResolves() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	s.backend.On("Login", s.ctx, "jo@example.com", "pw").Return(s.authResult(), nil)

	var stored domain.Session
	s.repo.On("SaveSession", s.ctx, mock.AnythingOfType("domain.Session")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.Session) }).
		Return(nil)

	session, token, err := svc.Login(s.ctx, "jo@example.com", "pw")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal("plain-backend-token", session.BackendToken)
	s.Equal("user-1", session.UserID)
	s.NotEqual("plain-backend-token", stored.BackendToken, "token must be encrypted at rest")
	s.WithinDuration(time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	s.repo.On("FindSessionByID", s.ctx, session.SessionID).Return(&stored, nil)
	resolved, err := svc.ResolveToken(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(session.SessionID, resolved.SessionID)
	s.Equal("plain-backend-token", resolved.BackendToken)
}

func (s *SessionServiceTestSuite) TestLogin_ExpiryCappedByBackendToken() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	result := s.authResult()
	result.ExpiresAt = time.Now().Add(10 * time.Minute)
	s.backend.On("Login", s.ctx, "jo@example.com", "pw").Return(result, nil)
	s.repo.On("SaveSession", s.ctx, mock.Anything).Return(nil)

	session, _, err := svc.Login(s.ctx, "jo@example.com", "pw")
	s.Require().NoError(err)
	s.Equal(result.ExpiresAt, session.ExpiresAt)
}

func (s *SessionServiceTestSuite) TestLogin_BackendRejects() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	s.backend.On("Login", s.ctx, "jo@example.com", "bad").Return(nil, apperrors.ErrUnauthorized)

	_, _, err := svc.Login(s.ctx, "jo@example.com", "bad")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.repo.AssertNotCalled(s.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestResolveToken_Garbage() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	_, err := svc.ResolveToken(s.ctx, "not-a-jwt")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *SessionServiceTestSuite) TestHydrate_Missing() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	s.repo.On("FindSessionByID", s.ctx, "gone").Return(nil, apperrors.ErrNotFound)

	_, err := svc.Hydrate(s.ctx, "gone")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *SessionServiceTestSuite) TestHydrate_ExpiredIsDeleted() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	enc, err := s.cipher.Encrypt("tok")
	s.Require().NoError(err)
	s.repo.On("FindSessionByID", s.ctx, "old").Return(&domain.Session{
		SessionID:    "old",
		UserID:       "user-1",
		BackendToken: enc,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}, nil)
	s.repo.On("DeleteSession", s.ctx, "old").Return(nil)

	_, err = svc.Hydrate(s.ctx, "old")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.repo.AssertCalled(s.T(), "DeleteSession", s.ctx, "old")
}

func (s *SessionServiceTestSuite) TestLogout_BackendFailureIsIgnored() {
	svc := services.NewSessionService(s.cfg, s.repo, s.backend, s.cipher)
	session := companySession(domain.RoleOwner)
	s.repo.On("DeleteSession", s.ctx, session.SessionID).Return(nil)
	s.backend.On("Logout", s.ctx, session.BackendToken).Return(errors.New("connection refused"))

	s.NoError(svc.Logout(s.ctx, session))
	s.backend.AssertExpectations(s.T())
}

func TestGoogleOAuthService_Enabled(t *testing.T) {
	disabled := services.NewGoogleOAuthService(&config.Config{})
	assert.False(t, disabled.Enabled())

	enabled := services.NewGoogleOAuthService(&config.Config{
		GoogleClientID:     "id",
		GoogleClientSecret: "secret",
		GoogleRedirectURL:  "http://localhost/callback",
	})
	require.True(t, enabled.Enabled())
	assert.Contains(t, enabled.GetGoogleLoginURL(context.Background(), "xyz"), "state=xyz")

	state, err := enabled.GenerateStateString(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, state)
}
