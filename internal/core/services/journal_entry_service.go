package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
)

// journalEntryService validates journal entry forms and records them with the backend.
type journalEntryService struct {
	BaseService
	backend  gateways.BackendTransactionGateway
	accounts portssvc.AccountReaderSvc
	drafts   portsrepo.DraftWriter
	kinds    *accounting.KindRegistry
	tracker  utils.EventTracker
}

// NewJournalEntryService creates the journal entry service. tracker may be nil.
func NewJournalEntryService(
	backend gateways.BackendTransactionGateway,
	accounts portssvc.AccountReaderSvc,
	drafts portsrepo.DraftWriter,
	kinds *accounting.KindRegistry,
	tracker utils.EventTracker,
) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		backend:  backend,
		accounts: accounts,
		drafts:   drafts,
		kinds:    kinds,
		tracker:  tracker,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) Preview(ctx context.Context, req dto.ValidateJournalRequest) accounting.Preview {
	return accounting.PreviewEntry(req.Header.ToHeader(), dto.ToLines(req.Lines), accounting.ValidateOptions{RequireDate: req.RequireDate})
}

func (s *journalEntryService) SanitizeLines(ctx context.Context, req dto.SanitizeLinesRequest) ([]domain.JournalLine, error) {
	lines := dto.ToLines(req.Lines)

	if len(req.Targets) == 0 {
		for i := range lines {
			if lines[i].DebitAmount != "" {
				lines[i] = accounting.BlurLine(lines[i], domain.DebitSide)
			}
			if lines[i].CreditAmount != "" {
				lines[i] = accounting.BlurLine(lines[i], domain.CreditSide)
			}
		}
		return lines, nil
	}

	index := make(map[int]int, len(lines))
	for i, line := range lines {
		index[line.ID] = i
	}
	for _, target := range req.Targets {
		i, ok := index[target.LineID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", accounting.ErrLineNotFound, target.LineID)
		}
		if target.Side != domain.DebitSide && target.Side != domain.CreditSide {
			return nil, accounting.ErrUnknownSide
		}
		lines[i] = accounting.BlurLine(lines[i], target.Side)
	}
	return lines, nil
}

func (s *journalEntryService) EntryKinds(ctx context.Context) []accounting.KindConfig {
	return s.kinds.All()
}

func (s *journalEntryService) Submit(ctx context.Context, session *domain.Session, req dto.SubmitJournalRequest) (*domain.Transaction, error) {
	if err := s.RequireWriter(session); err != nil {
		return nil, err
	}

	kindName := req.Kind
	if kindName == "" {
		kindName = domain.KindManual
	}
	kind, err := s.kinds.Get(kindName)
	if err != nil {
		return nil, err
	}

	header := req.Header.ToHeader()
	lines := dto.ToLines(req.Lines)

	if err := accounting.Validate(header, lines, accounting.ValidateOptions{RequireDate: true}); err != nil {
		s.LogDebug(ctx, "Journal entry failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	accounts, err := s.accounts.AccountsByID(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := kind.CheckAccounts(lines, accounts); err != nil {
		s.LogDebug(ctx, "Journal entry uses disallowed accounts", slog.String("error", err.Error()))
		return nil, err
	}

	newTx := accounting.AssembleTransaction(session.CompanyID, kind.SourceType, header, lines)
	if err := accounting.CheckAssembled(newTx.Entries); err != nil {
		s.LogWarn(ctx, err, "Journal entry unbalanced after cent truncation")
		return nil, err
	}

	created, err := s.backend.CreateTransaction(ctx, session.BackendToken, newTx)
	if err != nil {
		s.LogError(ctx, err, "Backend rejected journal entry",
			slog.String("company_id", session.CompanyID),
			slog.String("draft_id", req.DraftID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	if req.DraftID != "" {
		if err := s.drafts.DeleteDraft(ctx, session.UserID, req.DraftID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Failed to delete submitted draft", slog.String("draft_id", req.DraftID))
		}
	}

	if s.tracker != nil {
		s.tracker.Enqueue(session.UserID, utils.EventJournalSubmitted, map[string]any{
			"company_id":  session.CompanyID,
			"kind":        string(kind.Kind),
			"entry_count": len(newTx.Entries),
		})
	}
	s.LogInfo(ctx, "Journal entry submitted",
		slog.String("transaction_id", created.TransactionID),
		slog.String("company_id", session.CompanyID),
		slog.String("kind", string(kind.Kind)))
	return created, nil
}

func (s *journalEntryService) SubmitShortcut(ctx context.Context, session *domain.Session, kind domain.EntryKind, req dto.ShortcutRequest) (*domain.Transaction, error) {
	lines, err := accounting.BuildShortcutLines(kind, req.ToShortcutInput())
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, session, dto.SubmitJournalRequest{
		Kind:    kind,
		Header:  dto.FromHeader(req.ToHeader()),
		Lines:   dto.FromLines(lines),
		DraftID: req.DraftID,
	})
}
