package services

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
)

// JournalEntryEditorSvc holds the side-effect free helpers behind a journal entry form.
type JournalEntryEditorSvc interface {
	// Preview returns the running balance and the first failing submission check.
	Preview(ctx context.Context, req dto.ValidateJournalRequest) accounting.Preview

	// SanitizeLines applies blur-time normalisation to the targeted amount fields.
	SanitizeLines(ctx context.Context, req dto.SanitizeLinesRequest) ([]domain.JournalLine, error)

	// EntryKinds lists the configured entry kinds.
	EntryKinds(ctx context.Context) []accounting.KindConfig
}

// JournalEntrySubmitterSvc records journal entries with the backend.
type JournalEntrySubmitterSvc interface {
	// Submit validates, assembles and creates a transaction. The draft named in the request
	// is deleted on success and left alone on failure.
	Submit(ctx context.Context, session *domain.Session, req dto.SubmitJournalRequest) (*domain.Transaction, error)

	// SubmitShortcut expands an expense or revenue form into two lines and submits them.
	SubmitShortcut(ctx context.Context, session *domain.Session, kind domain.EntryKind, req dto.ShortcutRequest) (*domain.Transaction, error)
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryEditorSvc
	JournalEntrySubmitterSvc
}
