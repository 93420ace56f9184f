package dto

import (
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// SaveDraftRequest snapshots an in-progress journal entry form.
type SaveDraftRequest struct {
	Kind   domain.EntryKind `json:"kind" binding:"omitempty,oneof=manual expense revenue"`
	Header EntryHeaderDTO   `json:"header"`
	Lines  []JournalLineDTO `json:"lines" binding:"max=200,dive"`
}

// DraftResponse defines the data returned for a draft.
type DraftResponse struct {
	DraftID   string           `json:"draftID"`
	Kind      domain.EntryKind `json:"kind"`
	Header    EntryHeaderDTO   `json:"header"`
	Lines     []JournalLineDTO `json:"lines"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ListDraftsResponse wraps the drafts of the current user and company.
type ListDraftsResponse struct {
	Drafts []DraftResponse `json:"drafts"`
}

func ToDraftResponse(d *domain.JournalDraft) DraftResponse {
	return DraftResponse{
		DraftID:   d.DraftID,
		Kind:      d.Kind,
		Header:    FromHeader(d.Header),
		Lines:     FromLines(d.Lines),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToListDraftsResponse(drafts []domain.JournalDraft) ListDraftsResponse {
	res := ListDraftsResponse{Drafts: make([]DraftResponse, len(drafts))}
	for i := range drafts {
		res.Drafts[i] = ToDraftResponse(&drafts[i])
	}
	return res
}
