package domain

import "time"

// User is the identity the accounting backend reports after a successful login.
type User struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// AuthResult is the outcome of a backend login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Session is the explicit per-user context handed to every service call.
// It is created on login, updated on company switch and removed on logout.
type Session struct {
	SessionID    string      `json:"sessionID"`
	UserID       string      `json:"userID"`
	UserName     string      `json:"userName"`
	Email        string      `json:"email"`
	BackendToken string      `json:"-"`
	CompanyID    string      `json:"companyID,omitempty"`
	CompanyName  string      `json:"companyName,omitempty"`
	Role         CompanyRole `json:"role,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	ExpiresAt    time.Time   `json:"expiresAt"`
}

// IsExpired reports whether the session has passed its expiry time.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// HasCompany reports whether a company has been selected for this session.
func (s *Session) HasCompany() bool {
	return s.CompanyID != ""
}
