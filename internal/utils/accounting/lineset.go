package accounting

import (
	"fmt"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
)

var (
	ErrLineNotFound = fmt.Errorf("%w: journal line not found", apperrors.ErrNotFound)
	ErrMinimumLines = fmt.Errorf("%w: a journal entry keeps at least %d lines", apperrors.ErrValidation, MinimumEntries)
	ErrUnknownSide  = fmt.Errorf("%w: side must be DEBIT or CREDIT", apperrors.ErrValidation)
)

// LineSet is the ordered, editable collection of lines behind one journal entry form.
// Line IDs come from a counter scoped to the set and are never reused.
// A LineSet is not safe for concurrent use.
type LineSet struct {
	nextID int
	lines  []domain.JournalLine
}

// NewLineSet returns a set holding the two empty lines a creation form opens with.
func NewLineSet() *LineSet {
	s := &LineSet{}
	for i := 0; i < MinimumEntries; i++ {
		s.Add()
	}
	return s
}

// LineSetFromLines adopts existing lines (for example a saved draft), renumbering them
// and padding to the minimum line count.
func LineSetFromLines(lines []domain.JournalLine) *LineSet {
	s := &LineSet{}
	for _, line := range lines {
		line.ID = s.allocateID()
		s.lines = append(s.lines, line)
	}
	for len(s.lines) < MinimumEntries {
		s.Add()
	}
	return s
}

// LineSetFromEntries rehydrates an edit form from a stored transaction's entries,
// turning numeric amounts back into display strings.
func LineSetFromEntries(entries []domain.TransactionEntry) *LineSet {
	lines := make([]domain.JournalLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, domain.JournalLine{
			AccountID:    entry.AccountID,
			Description:  entry.Description,
			DebitAmount:  FormatAmount(entry.Debit),
			CreditAmount: FormatAmount(entry.Credit),
		})
	}
	return LineSetFromLines(lines)
}

func (s *LineSet) allocateID() int {
	s.nextID++
	return s.nextID
}

// Add appends an empty line and returns it.
func (s *LineSet) Add() domain.JournalLine {
	line := domain.JournalLine{ID: s.allocateID()}
	s.lines = append(s.lines, line)
	return line
}

// Remove deletes the line with the given ID. The set never drops below two lines.
func (s *LineSet) Remove(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrLineNotFound
	}
	if len(s.lines) <= MinimumEntries {
		return ErrMinimumLines
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	return nil
}

// SetAccount selects the account of a line. An empty ID means unselected.
func (s *LineSet) SetAccount(id int, accountID string) error {
	return s.update(id, func(l *domain.JournalLine) { l.AccountID = accountID })
}

// SetDescription sets the per-line description.
func (s *LineSet) SetDescription(id int, description string) error {
	return s.update(id, func(l *domain.JournalLine) { l.Description = description })
}

// Type records keystroke input into one amount field, keeping only digits and one '.'.
// The opposite side is left alone until Blur so tabbing between fields is not disturbed.
func (s *LineSet) Type(id int, side domain.Side, raw string) error {
	if err := checkSide(side); err != nil {
		return err
	}
	return s.update(id, func(l *domain.JournalLine) { l.SetAmount(side, SanitizeKeystroke(raw)) })
}

// Blur normalises one amount field as it loses focus; see BlurLine.
func (s *LineSet) Blur(id int, side domain.Side) error {
	if err := checkSide(side); err != nil {
		return err
	}
	return s.update(id, func(l *domain.JournalLine) { *l = BlurLine(*l, side) })
}

// Line returns a copy of the line with the given ID.
func (s *LineSet) Line(id int) (domain.JournalLine, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.JournalLine{}, ErrLineNotFound
	}
	return s.lines[idx], nil
}

// Lines returns a copy of the lines in display order.
func (s *LineSet) Lines() []domain.JournalLine {
	out := make([]domain.JournalLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines, including empty ones.
func (s *LineSet) Len() int {
	return len(s.lines)
}

// Balance computes the running totals shown under the form.
func (s *LineSet) Balance() Balance {
	return CalculateBalance(s.lines)
}

func (s *LineSet) update(id int, fn func(*domain.JournalLine)) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrLineNotFound
	}
	fn(&s.lines[idx])
	return nil
}

func (s *LineSet) indexOf(id int) int {
	for i := range s.lines {
		if s.lines[i].ID == id {
			return i
		}
	}
	return -1
}

func checkSide(side domain.Side) error {
	if side != domain.DebitSide && side != domain.CreditSide {
		return ErrUnknownSide
	}
	return nil
}
