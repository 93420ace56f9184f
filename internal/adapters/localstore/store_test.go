package localstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/mma_web/internal/adapters/localstore"
	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Sessions(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	_, err := store.CurrentSessionID()
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	session := domain.Session{
		SessionID:    "s-1",
		UserID:       "u-1",
		UserName:     "Jo",
		BackendToken: "ciphertext",
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}
	require.NoError(t, store.SaveSession(ctx, session))
	require.NoError(t, store.SetCurrentSessionID("s-1"))

	current, err := store.CurrentSessionID()
	require.NoError(t, err)
	assert.Equal(t, "s-1", current)

	company := domain.Company{CompanyID: "c-1", Name: "Acme", Role: domain.RoleAdmin}
	require.NoError(t, store.UpdateSessionCompany(ctx, "s-1", company, now.Add(time.Minute)))

	loaded, err := store.FindSessionByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", loaded.CompanyID)
	assert.Equal(t, domain.RoleAdmin, loaded.Role)
	assert.Equal(t, "ciphertext", loaded.BackendToken)
	assert.True(t, loaded.UpdatedAt.Equal(now.Add(time.Minute)))

	assert.ErrorIs(t, store.UpdateSessionCompany(ctx, "nope", company, now), apperrors.ErrNotFound)

	expired := session
	expired.SessionID = "s-0"
	expired.ExpiresAt = now.Add(-time.Hour)
	require.NoError(t, store.SaveSession(ctx, expired))

	removed, err := store.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	_, err = store.FindSessionByID(ctx, "s-0")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.DeleteSession(ctx, "s-1"))
	require.NoError(t, store.SetCurrentSessionID(""))
	_, err = store.CurrentSessionID()
	assert.Error(t, err)
}

func TestStore_Drafts(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	older := domain.JournalDraft{
		DraftID:   "d-1",
		UserID:    "u-1",
		CompanyID: "c-1",
		Kind:      domain.KindManual,
		Header:    domain.EntryHeader{Description: "older"},
		Lines:     []domain.JournalLine{{ID: 1, AccountID: "cash", DebitAmount: "5."}},
		CreatedAt: base,
		UpdatedAt: base,
	}
	newer := older
	newer.DraftID = "d-2"
	newer.Header.Description = "newer"
	newer.UpdatedAt = base.Add(time.Hour)
	otherCompany := older
	otherCompany.DraftID = "d-3"
	otherCompany.CompanyID = "c-2"

	for _, d := range []domain.JournalDraft{older, newer, otherCompany} {
		require.NoError(t, store.SaveDraft(ctx, d))
	}

	drafts, err := store.ListDrafts(ctx, "u-1", "c-1")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "d-2", drafts[0].DraftID)
	assert.Equal(t, "d-1", drafts[1].DraftID)
	assert.Equal(t, "5.", drafts[1].Lines[0].DebitAmount)

	_, err = store.FindDraftByID(ctx, "someone-else", "d-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stolen := older
	stolen.UserID = "someone-else"
	assert.ErrorIs(t, store.SaveDraft(ctx, stolen), apperrors.ErrNotFound)

	moved := otherCompany
	moved.CompanyID = "c-1"
	moved.Header.Description = "edited"
	require.NoError(t, store.SaveDraft(ctx, moved))
	kept, err := store.FindDraftByID(ctx, "u-1", "d-3")
	require.NoError(t, err)
	assert.Equal(t, "c-2", kept.CompanyID)
	assert.Equal(t, "edited", kept.Header.Description)

	require.NoError(t, store.DeleteDraft(ctx, "u-1", "d-1"))
	assert.ErrorIs(t, store.DeleteDraft(ctx, "u-1", "d-1"), apperrors.ErrNotFound)
}
