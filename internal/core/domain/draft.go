package domain

import "time"

// EntryKind names the form a journal entry is recorded through.
type EntryKind string

const (
	KindManual  EntryKind = "manual"
	KindExpense EntryKind = "expense"
	KindRevenue EntryKind = "revenue"
)

// JournalDraft is a best-effort snapshot of an in-progress journal entry form.
type JournalDraft struct {
	DraftID   string        `json:"draftID"`
	UserID    string        `json:"userID"`
	CompanyID string        `json:"companyID"`
	Kind      EntryKind     `json:"kind"`
	Header    EntryHeader   `json:"header"`
	Lines     []JournalLine `json:"lines"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
