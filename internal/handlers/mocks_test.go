package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*domain.Session, string, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Hydrate(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, session *domain.Session) ([]domain.Company, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, session *domain.Session, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) SelectCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Session, error) {
	args := m.Called(ctx, session, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, session *domain.Session, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) AccountsByID(ctx context.Context, session *domain.Session) (map[string]domain.Account, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, session *domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, session *domain.Session, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error {
	return m.Called(ctx, session, accountID).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) Preview(ctx context.Context, req dto.ValidateJournalRequest) accounting.Preview {
	return m.Called(ctx, req).Get(0).(accounting.Preview)
}

func (m *MockJournalEntryService) SanitizeLines(ctx context.Context, req dto.SanitizeLinesRequest) ([]domain.JournalLine, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalEntryService) EntryKinds(ctx context.Context) []accounting.KindConfig {
	return m.Called(ctx).Get(0).([]accounting.KindConfig)
}

func (m *MockJournalEntryService) Submit(ctx context.Context, session *domain.Session, req dto.SubmitJournalRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalEntryService) SubmitShortcut(ctx context.Context, session *domain.Session, kind domain.EntryKind, req dto.ShortcutRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, session *domain.Session, transactionID string) (*domain.Transaction, []domain.JournalLine, error) {
	args := m.Called(ctx, session, transactionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).([]domain.JournalLine), args.Error(2)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, session *domain.Session, params dto.ListTransactionsParams) (*domain.TransactionPage, string, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.TransactionPage), args.String(1), args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, session *domain.Session, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, session *domain.Session, transactionID string) error {
	return m.Called(ctx, session, transactionID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock DraftService ---
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) SaveDraft(ctx context.Context, session *domain.Session, draftID string, req dto.SaveDraftRequest) (*domain.JournalDraft, error) {
	args := m.Called(ctx, session, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraft), args.Error(1)
}

func (m *MockDraftService) GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error) {
	args := m.Called(ctx, session, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraft), args.Error(1)
}

func (m *MockDraftService) ListDrafts(ctx context.Context, session *domain.Session) ([]domain.JournalDraft, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalDraft), args.Error(1)
}

func (m *MockDraftService) DeleteDraft(ctx context.Context, session *domain.Session, draftID string) error {
	return m.Called(ctx, session, draftID).Error(0)
}

var _ portssvc.DraftSvcFacade = (*MockDraftService)(nil)

// stubPinger reports err from every Ping.
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// backendRejection mimics a 4xx from the accounting backend that carries a user message.
type backendRejection struct{ msg string }

func (e *backendRejection) Error() string       { return "backend returned 422: " + e.msg }
func (e *backendRejection) UserMessage() string { return e.msg }

func testSession(companyID string) *domain.Session {
	s := &domain.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		UserName:  "Test User",
		Email:     "test@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if companyID != "" {
		s.CompanyID = companyID
		s.CompanyName = "Acme"
		s.Role = domain.RoleOwner
	}
	return s
}
