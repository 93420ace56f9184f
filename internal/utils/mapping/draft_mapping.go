package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/models"
)

// ToModelDraft converts a domain JournalDraft to a model JournalDraft
func ToModelDraft(d domain.JournalDraft) (models.JournalDraft, error) {
	header, err := json.Marshal(d.Header)
	if err != nil {
		return models.JournalDraft{}, fmt.Errorf("failed to encode draft header: %w", err)
	}
	lines := d.Lines
	if lines == nil {
		lines = []domain.JournalLine{}
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return models.JournalDraft{}, fmt.Errorf("failed to encode draft lines: %w", err)
	}
	return models.JournalDraft{
		DraftID:   d.DraftID,
		UserID:    d.UserID,
		CompanyID: d.CompanyID,
		Kind:      string(d.Kind),
		Header:    header,
		Lines:     linesJSON,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// ToDomainDraft converts a model JournalDraft to a domain JournalDraft
func ToDomainDraft(m models.JournalDraft) (domain.JournalDraft, error) {
	d := domain.JournalDraft{
		DraftID:   m.DraftID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Kind:      domain.EntryKind(m.Kind),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Header) > 0 {
		if err := json.Unmarshal(m.Header, &d.Header); err != nil {
			return domain.JournalDraft{}, fmt.Errorf("failed to decode draft header %s: %w", m.DraftID, err)
		}
	}
	if len(m.Lines) > 0 {
		if err := json.Unmarshal(m.Lines, &d.Lines); err != nil {
			return domain.JournalDraft{}, fmt.Errorf("failed to decode draft lines %s: %w", m.DraftID, err)
		}
	}
	return d, nil
}

// ToDomainDraftSlice converts a slice of model drafts to domain drafts
func ToDomainDraftSlice(ms []models.JournalDraft) ([]domain.JournalDraft, error) {
	ds := make([]domain.JournalDraft, len(ms))
	for i, m := range ms {
		d, err := ToDomainDraft(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
