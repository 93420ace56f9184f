package dto

import (
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
)

// EntryKindResponse describes one way of recording a transaction.
type EntryKindResponse struct {
	Kind        domain.EntryKind     `json:"kind"`
	Label       string               `json:"label"`
	SourceType  domain.SourceType    `json:"sourceType"`
	DebitTypes  []domain.AccountType `json:"debitTypes"`
	CreditTypes []domain.AccountType `json:"creditTypes"`
}

func ToEntryKindResponses(kinds []accounting.KindConfig) []EntryKindResponse {
	res := make([]EntryKindResponse, len(kinds))
	for i, k := range kinds {
		res[i] = EntryKindResponse{
			Kind:        k.Kind,
			Label:       k.Label,
			SourceType:  k.SourceType,
			DebitTypes:  nonNil(k.DebitTypes),
			CreditTypes: nonNil(k.CreditTypes),
		}
	}
	return res
}

func nonNil(types []domain.AccountType) []domain.AccountType {
	if types == nil {
		return []domain.AccountType{}
	}
	return types
}
