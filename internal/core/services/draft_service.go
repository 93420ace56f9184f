package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/google/uuid"
)

type draftService struct {
	BaseService
	repo portsrepo.DraftRepositoryFacade
	now  func() time.Time
}

func NewDraftService(repo portsrepo.DraftRepositoryFacade) portssvc.DraftSvcFacade {
	return &draftService{repo: repo, now: time.Now}
}

var _ portssvc.DraftSvcFacade = (*draftService)(nil)

func (s *draftService) SaveDraft(ctx context.Context, session *domain.Session, draftID string, req dto.SaveDraftRequest) (*domain.JournalDraft, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, err
	}

	now := s.now()
	draft := domain.JournalDraft{
		DraftID:   draftID,
		UserID:    session.UserID,
		CompanyID: session.CompanyID,
		Kind:      req.Kind,
		Header:    req.Header.ToHeader(),
		Lines:     dto.ToLines(req.Lines),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if draft.Kind == "" {
		draft.Kind = domain.KindManual
	}

	if draftID == "" {
		draft.DraftID = uuid.NewString()
	} else {
		existing, err := s.GetDraft(ctx, session, draftID)
		if err != nil {
			return nil, err
		}
		draft.CompanyID = existing.CompanyID
		draft.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.SaveDraft(ctx, draft); err != nil {
		s.LogError(ctx, err, "Failed to save draft", slog.String("draft_id", draft.DraftID))
		return nil, err
	}
	s.LogDebug(ctx, "Draft saved", slog.String("draft_id", draft.DraftID))
	return &draft, nil
}

func (s *draftService) GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error) {
	draft, err := s.repo.FindDraftByID(ctx, session.UserID, draftID)
	if err != nil {
		return nil, err
	}
	// drafts are per company; another company's draft is invisible here
	if session.HasCompany() && draft.CompanyID != session.CompanyID {
		return nil, fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}
	return draft, nil
}

func (s *draftService) ListDrafts(ctx context.Context, session *domain.Session) ([]domain.JournalDraft, error) {
	if err := s.RequireCompany(session); err != nil {
		return nil, err
	}
	drafts, err := s.repo.ListDrafts(ctx, session.UserID, session.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list drafts", slog.String("company_id", session.CompanyID))
		return nil, err
	}
	if drafts == nil {
		return []domain.JournalDraft{}, nil
	}
	return drafts, nil
}

func (s *draftService) DeleteDraft(ctx context.Context, session *domain.Session, draftID string) error {
	if _, err := s.GetDraft(ctx, session, draftID); err != nil {
		return err
	}
	if err := s.repo.DeleteDraft(ctx, session.UserID, draftID); err != nil {
		s.LogError(ctx, err, "Failed to delete draft", slog.String("draft_id", draftID))
		return err
	}
	return nil
}
