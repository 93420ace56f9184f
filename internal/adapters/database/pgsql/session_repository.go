package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/models"
	"github.com/SscSPs/mma_web/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const (
	sessionsTable = "sessions"

	selectSessionFields = `
		session_id, user_id, user_name, email, backend_token,
		company_id, company_name, company_role, created_at, updated_at, expires_at
	`

	upsertSessionQuery = `
		INSERT INTO ` + sessionsTable + ` (
			session_id, user_id, user_name, email, backend_token,
			company_id, company_name, company_role, created_at, updated_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (session_id) DO UPDATE SET
			user_name = EXCLUDED.user_name,
			email = EXCLUDED.email,
			backend_token = EXCLUDED.backend_token,
			company_id = EXCLUDED.company_id,
			company_name = EXCLUDED.company_name,
			company_role = EXCLUDED.company_role,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
	`

	findSessionByIDQuery = `
		SELECT ` + selectSessionFields + `
		FROM ` + sessionsTable + `
		WHERE session_id = $1
	`

	updateSessionCompanyQuery = `
		UPDATE ` + sessionsTable + `
		SET company_id = $2, company_name = $3, company_role = $4, updated_at = $5
		WHERE session_id = $1
	`

	deleteSessionQuery = `DELETE FROM ` + sessionsTable + ` WHERE session_id = $1`

	deleteExpiredSessionsQuery = `DELETE FROM ` + sessionsTable + ` WHERE expires_at < $1`
)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	m := mapping.ToModelSession(session)
	_, err := r.exec(ctx, upsertSessionQuery,
		m.SessionID,
		m.UserID,
		m.UserName,
		m.Email,
		m.BackendToken,
		m.CompanyID,
		m.CompanyName,
		m.CompanyRole,
		m.CreatedAt,
		m.UpdatedAt,
		m.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	var m models.Session
	err := r.queryRow(ctx, findSessionByIDQuery, sessionID).Scan(
		&m.SessionID,
		&m.UserID,
		&m.UserName,
		&m.Email,
		&m.BackendToken,
		&m.CompanyID,
		&m.CompanyName,
		&m.CompanyRole,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	session := mapping.ToDomainSession(m)
	return &session, nil
}

func (r *PgxSessionRepository) UpdateSessionCompany(ctx context.Context, sessionID string, company domain.Company, now time.Time) error {
	cmdTag, err := r.exec(ctx, updateSessionCompanyQuery, sessionID, company.CompanyID, company.Name, string(company.Role), now)
	if err != nil {
		return fmt.Errorf("failed to update session company: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("session %s not found: %w", sessionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.exec(ctx, deleteSessionQuery, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	cmdTag, err := r.exec(ctx, deleteExpiredSessionsQuery, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
