package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/mma_web/internal/adapters/localstore"
	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/cli"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.String(1), args.Error(2)
}

func (m *mockAuth) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*domain.Session, string, error) {
	args := m.Called(ctx, idToken)
	return nil, "", args.Error(2)
}

func (m *mockAuth) Logout(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockAuth) ResolveToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	return nil, args.Error(1)
}

func (m *mockAuth) Hydrate(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type harness struct {
	store *localstore.Store
	auth  *mockAuth
	out   *bytes.Buffer
	app   *cli.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h := &harness{store: store, auth: new(mockAuth), out: new(bytes.Buffer)}
	h.app = &cli.App{
		Services: &portssvc.ServiceContainer{
			Auth:         h.auth,
			JournalEntry: services.NewJournalEntryService(nil, nil, store, accounting.DefaultKinds(), nil),
			Draft:        services.NewDraftService(store),
		},
		Current: store,
		Out:     h.out,
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := cli.NewRootCommand(h.app)
	cmd.SetArgs(args)
	cmd.SetOut(h.out)
	cmd.SetErr(h.out)
	return cmd.ExecuteContext(context.Background())
}

func (h *harness) loggedIn(t *testing.T) *domain.Session {
	t.Helper()
	session := &domain.Session{
		SessionID:   "sess-1",
		UserID:      "user-1",
		Email:       "me@example.com",
		CompanyID:   "comp-1",
		CompanyName: "Acme",
		Role:        domain.RoleOwner,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, h.store.SetCurrentSessionID(session.SessionID))
	h.auth.On("Hydrate", mock.Anything, session.SessionID).Return(session, nil)
	return session
}

func writeEntry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const balancedEntry = `kind: manual
date: 2024-03-01
description: March rent
lines:
  - account: rent
    debit: "1200.00"
  - account: cash
    credit: "1200.00"
`

const unbalancedEntry = `date: 2024-03-01
description: March rent
lines:
  - account: rent
    debit: "1200.00"
  - account: cash
    credit: "1100.00"
`

func TestLogin_StoresCurrentSession(t *testing.T) {
	h := newHarness(t)
	session := &domain.Session{SessionID: "sess-9", Email: "me@example.com"}
	h.auth.On("Login", mock.Anything, "me@example.com", "secret").Return(session, "token", nil).Once()

	require.NoError(t, h.run("login", "--email", "me@example.com", "--password", "secret"))

	id, err := h.store.CurrentSessionID()
	require.NoError(t, err)
	assert.Equal(t, "sess-9", id)
	assert.Contains(t, h.out.String(), "Logged in as me@example.com")
}

func TestLogin_RequiresPassword(t *testing.T) {
	h := newHarness(t)
	t.Setenv("MMA_PASSWORD", "")
	err := h.run("login", "--email", "me@example.com")
	assert.ErrorContains(t, err, "password required")
}

func TestLogout_ClearsCurrentSession(t *testing.T) {
	h := newHarness(t)
	session := h.loggedIn(t)
	h.auth.On("Logout", mock.Anything, session).Return(nil).Once()

	require.NoError(t, h.run("logout"))

	_, err := h.store.CurrentSessionID()
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	h.auth.AssertExpectations(t)
}

func TestCommand_ExpiredSessionIsForgotten(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SetCurrentSessionID("old"))
	h.auth.On("Hydrate", mock.Anything, "old").Return(nil, apperrors.ErrUnauthorized)

	err := h.run("drafts", "list")

	assert.ErrorContains(t, err, "session expired")
	_, err = h.store.CurrentSessionID()
	assert.Error(t, err)
}

func TestEntryCheck(t *testing.T) {
	t.Run("balanced entry is valid", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.run("entry", "check", writeEntry(t, balancedEntry)))
		assert.Contains(t, h.out.String(), "1200.00")
		assert.Contains(t, h.out.String(), "Entry is valid")
	})

	t.Run("unbalanced entry reports the difference", func(t *testing.T) {
		h := newHarness(t)
		err := h.run("entry", "check", writeEntry(t, unbalancedEntry))
		assert.Error(t, err)
		assert.Contains(t, h.out.String(), "UNBALANCED")
		assert.Contains(t, h.out.String(), "100.00")
	})

	t.Run("missing file", func(t *testing.T) {
		h := newHarness(t)
		assert.Error(t, h.run("entry", "check", filepath.Join(t.TempDir(), "nope.yaml")))
	})
}

func TestEntrySubmit_NeedsLogin(t *testing.T) {
	h := newHarness(t)
	err := h.run("entry", "submit", writeEntry(t, balancedEntry))
	assert.ErrorContains(t, err, "not logged in")
}

func TestDrafts_Lifecycle(t *testing.T) {
	h := newHarness(t)
	h.loggedIn(t)

	require.NoError(t, h.run("drafts", "save", writeEntry(t, balancedEntry)))

	drafts, err := h.store.ListDrafts(context.Background(), "user-1", "comp-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	id := drafts[0].DraftID

	h.out.Reset()
	require.NoError(t, h.run("drafts", "list"))
	assert.Contains(t, h.out.String(), id)
	assert.Contains(t, h.out.String(), "March rent")

	h.out.Reset()
	require.NoError(t, h.run("drafts", "show", id))
	assert.Contains(t, h.out.String(), "account: rent")
	assert.Contains(t, h.out.String(), "description: March rent")

	require.NoError(t, h.run("drafts", "rm", id))
	_, err = h.store.FindDraftByID(context.Background(), "user-1", id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
