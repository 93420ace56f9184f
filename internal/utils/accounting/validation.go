package accounting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidationCode identifies which submission check a journal entry failed.
type ValidationCode string

// Codes are listed in the order Validate checks them.
const (
	CodeDescriptionRequired ValidationCode = "DESCRIPTION_REQUIRED"
	CodeDateRequired        ValidationCode = "DATE_REQUIRED"
	CodeInsufficientEntries ValidationCode = "INSUFFICIENT_ENTRIES"
	CodeDoubleSidedLine     ValidationCode = "DOUBLE_SIDED_LINE"
	CodeUnbalanced          ValidationCode = "UNBALANCED"
	CodeZeroAmount          ValidationCode = "ZERO_AMOUNT"
)

// MinimumEntries is the number of qualifying lines double-entry requires.
const MinimumEntries = 2

// ValidationError is the first failed check of a journal entry.
// Difference is only set for CodeUnbalanced.
type ValidationError struct {
	Code       ValidationCode
	Difference decimal.Decimal
}

func (e *ValidationError) Error() string {
	return "journal entry invalid: " + e.Message()
}

// Unwrap lets callers match any ValidationError with errors.Is(err, apperrors.ErrValidation).
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// Message is the user-facing explanation of the failure.
func (e *ValidationError) Message() string {
	switch e.Code {
	case CodeDescriptionRequired:
		return "description is required"
	case CodeDateRequired:
		return "date is required"
	case CodeInsufficientEntries:
		return fmt.Sprintf("at least %d lines need an account and an amount", MinimumEntries)
	case CodeDoubleSidedLine:
		return "a line cannot have both a debit and a credit amount"
	case CodeUnbalanced:
		return fmt.Sprintf("debits and credits differ by %s", e.Difference.Abs().String())
	case CodeZeroAmount:
		return "transaction amount must be greater than zero"
	default:
		return string(e.Code)
	}
}

// ValidateOptions toggles the checks that only some forms apply.
type ValidateOptions struct {
	// RequireDate is set by creation forms; edit forms keep the stored date.
	RequireDate bool
}

// Validate runs the submission checks in fixed order and returns the first failure
// as a *ValidationError, or nil when the entry may be submitted. It has no side effects.
//
// Lines without an account and without amounts are ignored. The balance and zero
// amount checks sum every line, the same totals the form shows.
func Validate(header domain.EntryHeader, lines []domain.JournalLine, opts ValidateOptions) error {
	if strings.TrimSpace(header.Description) == "" {
		return &ValidationError{Code: CodeDescriptionRequired}
	}
	if opts.RequireDate && strings.TrimSpace(header.Date) == "" {
		return &ValidationError{Code: CodeDateRequired}
	}

	qualifying := QualifyingLines(lines)
	if len(qualifying) < MinimumEntries {
		return &ValidationError{Code: CodeInsufficientEntries}
	}

	for _, line := range lines {
		if IsDoubleSided(line) {
			return &ValidationError{Code: CodeDoubleSidedLine}
		}
	}

	balance := CalculateBalance(lines)
	if !balance.IsBalanced() {
		return &ValidationError{Code: CodeUnbalanced, Difference: balance.Difference}
	}

	if !balance.TotalDebit.IsPositive() {
		return &ValidationError{Code: CodeZeroAmount}
	}
	return nil
}

// IsQualifying reports whether a line takes part in the transaction: it has an
// account and a positive amount on at least one side.
func IsQualifying(line domain.JournalLine) bool {
	if strings.TrimSpace(line.AccountID) == "" {
		return false
	}
	return ParseAmount(line.DebitAmount).IsPositive() || ParseAmount(line.CreditAmount).IsPositive()
}

// IsDoubleSided reports whether a line carries a positive amount on both sides.
func IsDoubleSided(line domain.JournalLine) bool {
	return ParseAmount(line.DebitAmount).IsPositive() && ParseAmount(line.CreditAmount).IsPositive()
}

// QualifyingLines filters lines down to those that take part in the transaction.
func QualifyingLines(lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, 0, len(lines))
	for _, line := range lines {
		if IsQualifying(line) {
			out = append(out, line)
		}
	}
	return out
}

// CheckAssembled re-checks the balance of what is actually sent: qualifying lines after
// cent truncation. Amounts on lines without an account and sub-cent digits both drop
// out at assembly, and such an entry must never reach the backend.
func CheckAssembled(entries []domain.TransactionEntry) error {
	if len(entries) < MinimumEntries {
		return &ValidationError{Code: CodeInsufficientEntries}
	}
	balance := EntriesBalance(entries)
	if !balance.IsBalanced() {
		return &ValidationError{Code: CodeUnbalanced, Difference: balance.Difference}
	}
	if !balance.TotalDebit.IsPositive() {
		return &ValidationError{Code: CodeZeroAmount}
	}
	return nil
}

// Preview is what a form shows while it is being edited: the running balance of every
// line and the first check that would block submission right now.
type Preview struct {
	Balance    Balance
	Validation *ValidationError // nil when the entry could be submitted
}

// PreviewEntry computes a Preview without side effects.
func PreviewEntry(header domain.EntryHeader, lines []domain.JournalLine, opts ValidateOptions) Preview {
	p := Preview{Balance: CalculateBalance(lines)}
	if err := Validate(header, lines, opts); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			p.Validation = verr
		}
	}
	return p
}
