package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func accountIDs(accounts []domain.Account) []string {
	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.AccountID
	}
	return ids
}

func TestAccountService_ListAccounts(t *testing.T) {
	ctx := context.Background()
	session := companySession(domain.RoleMember)

	tests := []struct {
		name   string
		params dto.ListAccountsParams
		want   []string
	}{
		{"everything", dto.ListAccountsParams{}, []string{"cash", "card", "rent", "sales", "old"}},
		{"by type", dto.ListAccountsParams{AccountType: domain.Asset}, []string{"cash", "old"}},
		{"active only", dto.ListAccountsParams{ActiveOnly: true}, []string{"cash", "card", "rent", "sales"}},
		{"expense debit", dto.ListAccountsParams{Kind: domain.KindExpense, Side: domain.DebitSide}, []string{"cash", "rent"}},
		{"expense credit", dto.ListAccountsParams{Kind: domain.KindExpense, Side: domain.CreditSide}, []string{"cash", "card"}},
		{"revenue credit", dto.ListAccountsParams{Kind: domain.KindRevenue, Side: domain.CreditSide}, []string{"card", "sales"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			backend.On("ListAccounts", ctx, "backend-token", "comp-1").Return(chartOfAccounts(), nil)
			svc := services.NewAccountService(backend, accounting.DefaultKinds())

			got, err := svc.ListAccounts(ctx, session, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, accountIDs(got))
		})
	}
}

func TestAccountService_ListAccounts_Errors(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountService(new(MockBackend), accounting.DefaultKinds())

	_, err := svc.ListAccounts(ctx, &domain.Session{UserID: "user-1"}, dto.ListAccountsParams{})
	assert.ErrorIs(t, err, apperrors.ErrNoCompanySelected)

	_, err = svc.ListAccounts(ctx, companySession(domain.RoleOwner), dto.ListAccountsParams{Kind: domain.KindExpense})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ListAccounts(ctx, companySession(domain.RoleOwner), dto.ListAccountsParams{Kind: "transfer", Side: domain.DebitSide})
	assert.ErrorIs(t, err, accounting.ErrUnknownKind)
}

func TestAccountService_ReadOnlyCannotWrite(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	svc := services.NewAccountService(backend, accounting.DefaultKinds())
	session := companySession(domain.RoleReadOnly)

	_, err := svc.CreateAccount(ctx, session, dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.ErrorIs(t, svc.DeactivateAccount(ctx, session, "cash"), apperrors.ErrForbidden)
	backend.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_UpdateAccount_MergesCurrentState(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	svc := services.NewAccountService(backend, accounting.DefaultKinds())
	session := companySession(domain.RoleAdmin)

	newName := "Petty cash"
	backend.On("ListAccounts", ctx, "backend-token", "comp-1").Return(chartOfAccounts(), nil)
	backend.On("UpdateAccount", ctx, "backend-token", "comp-1", "cash", mock.MatchedBy(func(in domain.AccountInput) bool {
		return in.Name == newName && in.AccountType == domain.Asset && in.IsActive != nil && *in.IsActive
	})).Return(&domain.Account{AccountID: "cash", Name: newName, AccountType: domain.Asset, IsActive: true}, nil)

	acc, err := svc.UpdateAccount(ctx, session, "cash", dto.UpdateAccountRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, acc.Name)

	_, err = svc.UpdateAccount(ctx, session, "missing", dto.UpdateAccountRequest{Name: &newName})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
