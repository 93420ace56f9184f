package domain

import "time"

// AuditFields holds the audit timestamps the accounting backend reports for its entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
