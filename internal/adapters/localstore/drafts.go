package localstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/models"
	"github.com/SscSPs/mma_web/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

var _ portsrepo.DraftRepositoryFacade = (*Store)(nil)

func (s *Store) SaveDraft(_ context.Context, draft domain.JournalDraft) error {
	m, err := mapping.ToModelDraft(draft)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketDrafts))
		var existing models.JournalDraft
		err := getJSON(b, draft.DraftID, &existing)
		switch {
		case err == nil:
			if existing.UserID != draft.UserID {
				return fmt.Errorf("draft %s: %w", draft.DraftID, apperrors.ErrNotFound)
			}
			m.CompanyID = existing.CompanyID
			m.CreatedAt = existing.CreatedAt
		case !isNotFound(err):
			return err
		}
		return putJSON(b, draft.DraftID, m)
	})
}

func (s *Store) FindDraftByID(_ context.Context, userID, draftID string) (*domain.JournalDraft, error) {
	var m models.JournalDraft
	err := s.db.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket([]byte(bucketDrafts)), draftID, &m)
	})
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	d, err := mapping.ToDomainDraft(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDrafts(_ context.Context, userID, companyID string) ([]domain.JournalDraft, error) {
	ms := []models.JournalDraft{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketDrafts))
		return b.ForEach(func(k, v []byte) error {
			var m models.JournalDraft
			if err := getJSON(b, string(k), &m); err != nil {
				return err
			}
			if m.UserID == userID && m.CompanyID == companyID {
				ms = append(ms, m)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].UpdatedAt.After(ms[j].UpdatedAt) })
	return mapping.ToDomainDraftSlice(ms)
}

func (s *Store) DeleteDraft(_ context.Context, userID, draftID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketDrafts))
		var m models.JournalDraft
		if err := getJSON(b, draftID, &m); err != nil {
			return err
		}
		if m.UserID != userID {
			return apperrors.ErrNotFound
		}
		return b.Delete([]byte(draftID))
	})
}
