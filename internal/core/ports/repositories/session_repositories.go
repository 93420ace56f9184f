package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// SessionReader defines read operations for session data
type SessionReader interface {
	// FindSessionByID retrieves a session by its ID. Expired sessions are still returned;
	// callers decide what to do with them.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter defines write operations for session data
type SessionWriter interface {
	// SaveSession persists a new session or replaces an existing one.
	SaveSession(ctx context.Context, session domain.Session) error

	// UpdateSessionCompany records the company selected for a session.
	UpdateSessionCompany(ctx context.Context, sessionID string, company domain.Company, now time.Time) error

	// DeleteSession removes a session. Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionLifecycleManager defines housekeeping operations for sessions
type SessionLifecycleManager interface {
	// DeleteExpiredSessions removes every session that expired before now and returns how many went.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
	SessionLifecycleManager
}
