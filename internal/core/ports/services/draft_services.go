package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
)

// DraftSvcFacade defines best-effort auto-save of journal entry forms.
type DraftSvcFacade interface {
	// SaveDraft creates a draft when draftID is empty and overwrites it otherwise.
	SaveDraft(ctx context.Context, session *domain.Session, draftID string, req dto.SaveDraftRequest) (*domain.JournalDraft, error)
	GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error)
	ListDrafts(ctx context.Context, session *domain.Session) ([]domain.JournalDraft, error)
	DeleteDraft(ctx context.Context, session *domain.Session, draftID string) error
}
