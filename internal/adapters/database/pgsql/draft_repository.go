package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/models"
	"github.com/SscSPs/mma_web/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDraftRepository struct {
	BaseRepository
}

func newPgxDraftRepository(db *pgxpool.Pool) portsrepo.DraftRepositoryFacade {
	return &PgxDraftRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DraftRepositoryFacade = (*PgxDraftRepository)(nil)

const (
	draftsTable = "journal_drafts"

	selectDraftFields = `draft_id, user_id, company_id, kind, header, lines, created_at, updated_at`

	upsertDraftQuery = `
		INSERT INTO ` + draftsTable + ` (` + selectDraftFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (draft_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			header = EXCLUDED.header,
			lines = EXCLUDED.lines,
			updated_at = EXCLUDED.updated_at
		WHERE ` + draftsTable + `.user_id = EXCLUDED.user_id
	`

	findDraftByIDQuery = `
		SELECT ` + selectDraftFields + `
		FROM ` + draftsTable + `
		WHERE draft_id = $1 AND user_id = $2
	`

	listDraftsQuery = `
		SELECT ` + selectDraftFields + `
		FROM ` + draftsTable + `
		WHERE user_id = $1 AND company_id = $2
		ORDER BY updated_at DESC
	`

	deleteDraftQuery = `DELETE FROM ` + draftsTable + ` WHERE draft_id = $1 AND user_id = $2`
)

func scanDraft(row pgx.Row) (models.JournalDraft, error) {
	var m models.JournalDraft
	err := row.Scan(
		&m.DraftID,
		&m.UserID,
		&m.CompanyID,
		&m.Kind,
		&m.Header,
		&m.Lines,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxDraftRepository) SaveDraft(ctx context.Context, draft domain.JournalDraft) error {
	m, err := mapping.ToModelDraft(draft)
	if err != nil {
		return err
	}
	cmdTag, err := r.exec(ctx, upsertDraftQuery,
		m.DraftID,
		m.UserID,
		m.CompanyID,
		m.Kind,
		string(m.Header),
		string(m.Lines),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// the draft ID exists but belongs to another user
		return fmt.Errorf("draft %s: %w", draft.DraftID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDraftRepository) FindDraftByID(ctx context.Context, userID, draftID string) (*domain.JournalDraft, error) {
	m, err := scanDraft(r.queryRow(ctx, findDraftByIDQuery, draftID, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find draft %s: %w", draftID, err)
	}
	d, err := mapping.ToDomainDraft(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDraftRepository) ListDrafts(ctx context.Context, userID, companyID string) ([]domain.JournalDraft, error) {
	rows, err := r.query(ctx, listDraftsQuery, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	ms := []models.JournalDraft{}
	for rows.Next() {
		m, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating draft rows: %w", rows.Err())
	}
	return mapping.ToDomainDraftSlice(ms)
}

func (r *PgxDraftRepository) DeleteDraft(ctx context.Context, userID, draftID string) error {
	cmdTag, err := r.exec(ctx, deleteDraftQuery, draftID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}
	return nil
}
