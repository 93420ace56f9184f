package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock accounting backend ---
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	var res *domain.AuthResult
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.AuthResult)
	}
	return res, args.Error(1)
}

func (m *MockBackend) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	args := m.Called(ctx, idToken)
	var res *domain.AuthResult
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.AuthResult)
	}
	return res, args.Error(1)
}

func (m *MockBackend) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockBackend) ListCompanies(ctx context.Context, token string) ([]domain.Company, error) {
	args := m.Called(ctx, token)
	var res []domain.Company
	if args.Get(0) != nil {
		res = args.Get(0).([]domain.Company)
	}
	return res, args.Error(1)
}

func (m *MockBackend) CreateCompany(ctx context.Context, token string, name, defaultCurrency string) (*domain.Company, error) {
	args := m.Called(ctx, token, name, defaultCurrency)
	var res *domain.Company
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Company)
	}
	return res, args.Error(1)
}

func (m *MockBackend) ListAccounts(ctx context.Context, token, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, token, companyID)
	var res []domain.Account
	if args.Get(0) != nil {
		res = args.Get(0).([]domain.Account)
	}
	return res, args.Error(1)
}

func (m *MockBackend) CreateAccount(ctx context.Context, token, companyID string, in domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, token, companyID, in)
	var res *domain.Account
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Account)
	}
	return res, args.Error(1)
}

func (m *MockBackend) UpdateAccount(ctx context.Context, token, companyID, accountID string, in domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, token, companyID, accountID, in)
	var res *domain.Account
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Account)
	}
	return res, args.Error(1)
}

func (m *MockBackend) DeleteAccount(ctx context.Context, token, companyID, accountID string) error {
	return m.Called(ctx, token, companyID, accountID).Error(0)
}

func (m *MockBackend) CreateTransaction(ctx context.Context, token string, tx domain.NewTransaction) (*domain.Transaction, error) {
	args := m.Called(ctx, token, tx)
	var res *domain.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Transaction)
	}
	return res, args.Error(1)
}

func (m *MockBackend) GetTransaction(ctx context.Context, token, companyID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, token, companyID, transactionID)
	var res *domain.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Transaction)
	}
	return res, args.Error(1)
}

func (m *MockBackend) ListTransactions(ctx context.Context, token, companyID string, limit, offset int) (*domain.TransactionPage, error) {
	args := m.Called(ctx, token, companyID, limit, offset)
	var res *domain.TransactionPage
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.TransactionPage)
	}
	return res, args.Error(1)
}

func (m *MockBackend) UpdateTransaction(ctx context.Context, token, transactionID string, tx domain.NewTransaction) (*domain.Transaction, error) {
	args := m.Called(ctx, token, transactionID, tx)
	var res *domain.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.Transaction)
	}
	return res, args.Error(1)
}

func (m *MockBackend) DeleteTransaction(ctx context.Context, token, companyID, transactionID string) error {
	return m.Called(ctx, token, companyID, transactionID).Error(0)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	var res *domain.Session
	if args.Get(0) != nil {
		// hand out a copy so the service cannot mutate the fixture
		s := *args.Get(0).(*domain.Session)
		res = &s
	}
	return res, args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) UpdateSessionCompany(ctx context.Context, sessionID string, company domain.Company, now time.Time) error {
	return m.Called(ctx, sessionID, company, now).Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock DraftRepository ---
type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) FindDraftByID(ctx context.Context, userID, draftID string) (*domain.JournalDraft, error) {
	args := m.Called(ctx, userID, draftID)
	var res *domain.JournalDraft
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.JournalDraft)
	}
	return res, args.Error(1)
}

func (m *MockDraftRepository) ListDrafts(ctx context.Context, userID, companyID string) ([]domain.JournalDraft, error) {
	args := m.Called(ctx, userID, companyID)
	var res []domain.JournalDraft
	if args.Get(0) != nil {
		res = args.Get(0).([]domain.JournalDraft)
	}
	return res, args.Error(1)
}

func (m *MockDraftRepository) SaveDraft(ctx context.Context, draft domain.JournalDraft) error {
	return m.Called(ctx, draft).Error(0)
}

func (m *MockDraftRepository) DeleteDraft(ctx context.Context, userID, draftID string) error {
	return m.Called(ctx, userID, draftID).Error(0)
}

// --- Mock EventTracker ---
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

func companySession(role domain.CompanyRole) *domain.Session {
	return &domain.Session{
		SessionID:    "sess-1",
		UserID:       "user-1",
		BackendToken: "backend-token",
		CompanyID:    "comp-1",
		CompanyName:  "Acme",
		Role:         role,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func chartOfAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "cash", CompanyID: "comp-1", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		{AccountID: "card", CompanyID: "comp-1", Name: "Credit card", AccountType: domain.Liability, IsActive: true},
		{AccountID: "rent", CompanyID: "comp-1", Name: "Rent", AccountType: domain.Expense, IsActive: true},
		{AccountID: "sales", CompanyID: "comp-1", Name: "Sales", AccountType: domain.Revenue, IsActive: true},
		{AccountID: "old", CompanyID: "comp-1", Name: "Old bank", AccountType: domain.Asset, IsActive: false},
	}
}
