package repositories

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// DraftReader defines read operations for journal drafts
type DraftReader interface {
	// FindDraftByID retrieves a draft owned by the given user.
	FindDraftByID(ctx context.Context, userID, draftID string) (*domain.JournalDraft, error)

	// ListDrafts returns a user's drafts for one company, most recently updated first.
	ListDrafts(ctx context.Context, userID, companyID string) ([]domain.JournalDraft, error)
}

// DraftWriter defines write operations for journal drafts
type DraftWriter interface {
	// SaveDraft inserts or overwrites a draft. The last write wins.
	SaveDraft(ctx context.Context, draft domain.JournalDraft) error

	// DeleteDraft removes a draft owned by the given user.
	DeleteDraft(ctx context.Context, userID, draftID string) error
}

// DraftRepositoryFacade combines all draft-related repository interfaces
type DraftRepositoryFacade interface {
	DraftReader
	DraftWriter
}
