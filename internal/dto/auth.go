package dto

import (
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// LoginRequest carries email/password credentials that are forwarded to the accounting backend.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeRequest carries the authorization code returned by Google's consent screen.
type GoogleExchangeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   SessionResponse `json:"session"`
}

// SessionResponse is the client-visible part of a session. The backend token never leaves the server.
type SessionResponse struct {
	SessionID   string             `json:"sessionID"`
	UserID      string             `json:"userID"`
	UserName    string             `json:"userName"`
	Email       string             `json:"email"`
	CompanyID   string             `json:"companyID,omitempty"`
	CompanyName string             `json:"companyName,omitempty"`
	Role        domain.CompanyRole `json:"role,omitempty"`
	ExpiresAt   time.Time          `json:"expiresAt"`
}

// ToSessionResponse converts a domain.Session to SessionResponse DTO
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:   s.SessionID,
		UserID:      s.UserID,
		UserName:    s.UserName,
		Email:       s.Email,
		CompanyID:   s.CompanyID,
		CompanyName: s.CompanyName,
		Role:        s.Role,
		ExpiresAt:   s.ExpiresAt,
	}
}

// ToLoginResponse builds the login response from a new session and its signed token.
func ToLoginResponse(s *domain.Session, token string) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		Session:   ToSessionResponse(s),
	}
}
