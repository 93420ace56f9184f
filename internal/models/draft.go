package models

import (
	"encoding/json"
	"time"
)

// JournalDraft is the stored form of an in-progress journal entry.
// Header and Lines are kept as JSON documents.
type JournalDraft struct {
	DraftID   string          `json:"draftID" db:"draft_id"`
	UserID    string          `json:"userID" db:"user_id"`
	CompanyID string          `json:"companyID" db:"company_id"`
	Kind      string          `json:"kind" db:"kind"`
	Header    json.RawMessage `json:"header" db:"header"`
	Lines     json.RawMessage `json:"lines" db:"lines"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// TableName specifies the table name
func (JournalDraft) TableName() string {
	return "journal_drafts"
}
