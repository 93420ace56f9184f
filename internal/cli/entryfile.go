package cli

import (
	"fmt"
	"os"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
	"gopkg.in/yaml.v3"
)

// entryFile is the YAML form of a journal entry:
//
//	kind: manual
//	date: 2024-03-01
//	description: March rent
//	lines:
//	  - account: rent
//	    debit: "1200.00"
//	  - account: cash
//	    credit: "1200.00"
type entryFile struct {
	Kind        domain.EntryKind `yaml:"kind,omitempty"`
	Date        string           `yaml:"date"`
	Description string           `yaml:"description"`
	Reference   string           `yaml:"reference,omitempty"`
	Notes       string           `yaml:"notes,omitempty"`
	Lines       []entryFileLine  `yaml:"lines"`
}

type entryFileLine struct {
	Account     string `yaml:"account"`
	Description string `yaml:"description,omitempty"`
	Debit       string `yaml:"debit,omitempty"`
	Credit      string `yaml:"credit,omitempty"`
}

func loadEntryFile(path string) (*entryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entry file: %w", err)
	}
	var f entryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing entry file %s: %w", path, err)
	}
	return &f, nil
}

func (f *entryFile) header() dto.EntryHeaderDTO {
	return dto.EntryHeaderDTO{
		Date:        f.Date,
		Description: f.Description,
		Reference:   f.Reference,
		Notes:       f.Notes,
	}
}

// lines numbers the file's lines from 1 in file order.
func (f *entryFile) lines() []dto.JournalLineDTO {
	out := make([]dto.JournalLineDTO, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = dto.JournalLineDTO{
			ID:           i + 1,
			AccountID:    l.Account,
			Description:  l.Description,
			DebitAmount:  l.Debit,
			CreditAmount: l.Credit,
		}
	}
	return out
}

func entryFileFromDraft(d *domain.JournalDraft) entryFile {
	f := entryFile{
		Kind:        d.Kind,
		Date:        d.Header.Date,
		Description: d.Header.Description,
		Reference:   d.Header.Reference,
		Notes:       d.Header.Notes,
	}
	for _, l := range d.Lines {
		f.Lines = append(f.Lines, entryFileLine{
			Account:     l.AccountID,
			Description: l.Description,
			Debit:       l.DebitAmount,
			Credit:      l.CreditAmount,
		})
	}
	return f
}
