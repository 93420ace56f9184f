package mapping

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/models"
)

// ToModelSession converts a domain Session to a model Session.
// The backend token is copied as is; callers encrypt it beforehand.
func ToModelSession(d domain.Session) models.Session {
	m := models.Session{
		SessionID:    d.SessionID,
		UserID:       d.UserID,
		UserName:     d.UserName,
		Email:        d.Email,
		BackendToken: d.BackendToken,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		ExpiresAt:    d.ExpiresAt,
	}
	if d.HasCompany() {
		m.CompanyID = stringPtr(d.CompanyID)
		m.CompanyName = stringPtr(d.CompanyName)
		m.CompanyRole = stringPtr(string(d.Role))
	}
	return m
}

// ToDomainSession converts a model Session to a domain Session
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID:    m.SessionID,
		UserID:       m.UserID,
		UserName:     m.UserName,
		Email:        m.Email,
		BackendToken: m.BackendToken,
		CompanyID:    derefString(m.CompanyID),
		CompanyName:  derefString(m.CompanyName),
		Role:         domain.CompanyRole(derefString(m.CompanyRole)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		ExpiresAt:    m.ExpiresAt,
	}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
