package accounting

import (
	"strings"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// AssembleEntries maps validated lines to backend entries. Only qualifying lines are kept,
// amounts are truncated to cents, and a blank line description falls back to the header's.
// It does not fail; callers run Validate first.
func AssembleEntries(header domain.EntryHeader, lines []domain.JournalLine) []domain.TransactionEntry {
	headerDescription := strings.TrimSpace(header.Description)
	entries := make([]domain.TransactionEntry, 0, len(lines))
	for _, line := range lines {
		if !IsQualifying(line) {
			continue
		}
		description := strings.TrimSpace(line.Description)
		if description == "" {
			description = headerDescription
		}
		entries = append(entries, domain.TransactionEntry{
			AccountID:   strings.TrimSpace(line.AccountID),
			Debit:       TruncateToCents(ParseAmount(line.DebitAmount)),
			Credit:      TruncateToCents(ParseAmount(line.CreditAmount)),
			Description: description,
		})
	}
	return entries
}

// AssembleTransaction builds the complete creation request for the backend.
func AssembleTransaction(companyID string, sourceType domain.SourceType, header domain.EntryHeader, lines []domain.JournalLine) domain.NewTransaction {
	return domain.NewTransaction{
		CompanyID:   companyID,
		Date:        strings.TrimSpace(header.Date),
		Description: strings.TrimSpace(header.Description),
		Reference:   strings.TrimSpace(header.Reference),
		Notes:       strings.TrimSpace(header.Notes),
		SourceType:  sourceType,
		Entries:     AssembleEntries(header, lines),
	}
}
