package accounting

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed kinds.yaml
var defaultKindsYAML []byte

var (
	ErrUnknownKind         = fmt.Errorf("%w: unknown entry kind", apperrors.ErrValidation)
	ErrAccountNotAllowed   = fmt.Errorf("%w: account type not allowed on this side for the entry kind", apperrors.ErrValidation)
	ErrAccountNotFound     = fmt.Errorf("%w: account not found in chart of accounts", apperrors.ErrValidation)
	ErrAccountInactive     = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	ErrShortcutUnsupported = fmt.Errorf("%w: entry kind has no shortcut form", apperrors.ErrValidation)
)

// KindConfig describes one way of recording a transaction and which account types
// may appear on each side of its lines.
type KindConfig struct {
	Kind        domain.EntryKind     `yaml:"kind" json:"kind"`
	Label       string               `yaml:"label" json:"label"`
	SourceType  domain.SourceType    `yaml:"sourceType" json:"sourceType"`
	DebitTypes  []domain.AccountType `yaml:"debitTypes" json:"debitTypes"`
	CreditTypes []domain.AccountType `yaml:"creditTypes" json:"creditTypes"`
}

// AllowsAccount reports whether an account of type t may be used on the given side.
func (k KindConfig) AllowsAccount(side domain.Side, t domain.AccountType) bool {
	allowed := k.DebitTypes
	if side == domain.CreditSide {
		allowed = k.CreditTypes
	}
	return len(allowed) == 0 || slices.Contains(allowed, t)
}

// FilterAccounts returns the active accounts usable on the given side, for account pickers.
func (k KindConfig) FilterAccounts(side domain.Side, accounts []domain.Account) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.IsActive && k.AllowsAccount(side, acc.AccountType) {
			out = append(out, acc)
		}
	}
	return out
}

// CheckAccounts verifies every qualifying line points at a known, active account whose
// type this kind allows on the line's side.
func (k KindConfig) CheckAccounts(lines []domain.JournalLine, accounts map[string]domain.Account) error {
	for _, line := range QualifyingLines(lines) {
		accountID := strings.TrimSpace(line.AccountID)
		acc, ok := accounts[accountID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s", ErrAccountInactive, acc.Name)
		}
		side := domain.DebitSide
		if !ParseAmount(line.DebitAmount).IsPositive() {
			side = domain.CreditSide
		}
		if !k.AllowsAccount(side, acc.AccountType) {
			return fmt.Errorf("%w: %s account %q cannot be %s in a %s entry",
				ErrAccountNotAllowed, acc.AccountType, acc.Name, strings.ToLower(string(side))+"ed", k.Kind)
		}
	}
	return nil
}

// KindRegistry is the set of configured entry kinds, in declaration order.
type KindRegistry struct {
	kinds []KindConfig
}

type kindsFile struct {
	Kinds []KindConfig `yaml:"kinds"`
}

// LoadKinds reads entry kinds from a YAML file, or the built-in set when path is empty.
func LoadKinds(path string) (*KindRegistry, error) {
	if path == "" {
		return ParseKinds(defaultKindsYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry kinds file %s: %w", path, err)
	}
	return ParseKinds(data)
}

// DefaultKinds returns the built-in entry kinds.
func DefaultKinds() *KindRegistry {
	reg, err := ParseKinds(defaultKindsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded kinds.yaml is invalid: %v", err))
	}
	return reg
}

// ParseKinds decodes and checks an entry kinds document.
func ParseKinds(data []byte) (*KindRegistry, error) {
	var file kindsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse entry kinds: %w", err)
	}
	if len(file.Kinds) == 0 {
		return nil, fmt.Errorf("entry kinds document defines no kinds")
	}

	seen := make(map[domain.EntryKind]struct{}, len(file.Kinds))
	for _, k := range file.Kinds {
		if k.Kind == "" {
			return nil, fmt.Errorf("entry kind without a name")
		}
		if _, dup := seen[k.Kind]; dup {
			return nil, fmt.Errorf("entry kind %q defined twice", k.Kind)
		}
		seen[k.Kind] = struct{}{}
		if k.SourceType == "" {
			return nil, fmt.Errorf("entry kind %q has no sourceType", k.Kind)
		}
		for _, t := range append(slices.Clone(k.DebitTypes), k.CreditTypes...) {
			if !t.Valid() {
				return nil, fmt.Errorf("entry kind %q references unknown account type %q", k.Kind, t)
			}
		}
	}
	return &KindRegistry{kinds: file.Kinds}, nil
}

// Get looks up a kind by name.
func (r *KindRegistry) Get(kind domain.EntryKind) (KindConfig, error) {
	for _, k := range r.kinds {
		if k.Kind == kind {
			return k, nil
		}
	}
	return KindConfig{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// All returns every configured kind.
func (r *KindRegistry) All() []KindConfig {
	return slices.Clone(r.kinds)
}

// ShortcutInput is what the expense and revenue quick-entry forms collect.
type ShortcutInput struct {
	Amount            string
	CategoryAccountID string // the expense or revenue account
	PaymentAccountID  string // the account paid from or deposited to
	Description       string
}

// BuildShortcutLines expands a quick-entry form into its two journal lines.
// Expense: debit the category, credit the payment account.
// Revenue: debit the payment account, credit the category.
func BuildShortcutLines(kind domain.EntryKind, in ShortcutInput) ([]domain.JournalLine, error) {
	amount := SanitizeOnBlur(in.Amount)
	var debitAccount, creditAccount string
	switch kind {
	case domain.KindExpense:
		debitAccount, creditAccount = in.CategoryAccountID, in.PaymentAccountID
	case domain.KindRevenue:
		debitAccount, creditAccount = in.PaymentAccountID, in.CategoryAccountID
	default:
		return nil, fmt.Errorf("%w: %q", ErrShortcutUnsupported, kind)
	}

	set := NewLineSet()
	lines := set.Lines()
	lines[0].AccountID = debitAccount
	lines[0].DebitAmount = amount
	lines[0].Description = in.Description
	lines[1].AccountID = creditAccount
	lines[1].CreditAmount = amount
	lines[1].Description = in.Description
	return lines, nil
}
