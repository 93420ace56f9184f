package localstore

import (
	"context"
	"time"

	"github.com/SscSPs/mma_web/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/models"
	"github.com/SscSPs/mma_web/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

var _ portsrepo.SessionRepositoryFacade = (*Store)(nil)

func (s *Store) SaveSession(_ context.Context, session domain.Session) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket([]byte(bucketSessions)), session.SessionID, mapping.ToModelSession(session))
	})
}

func (s *Store) FindSessionByID(_ context.Context, sessionID string) (*domain.Session, error) {
	var m models.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket([]byte(bucketSessions)), sessionID, &m)
	})
	if err != nil {
		return nil, err
	}
	session := mapping.ToDomainSession(m)
	return &session, nil
}

func (s *Store) UpdateSessionCompany(_ context.Context, sessionID string, company domain.Company, now time.Time) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		var m models.Session
		if err := getJSON(b, sessionID, &m); err != nil {
			return err
		}
		d := mapping.ToDomainSession(m)
		d.CompanyID = company.CompanyID
		d.CompanyName = company.Name
		d.Role = company.Role
		d.UpdatedAt = now
		return putJSON(b, sessionID, mapping.ToModelSession(d))
	})
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Delete([]byte(sessionID))
	})
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		var expired [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var m models.Session
			if err := getJSON(b, string(k), &m); err != nil {
				return err
			}
			if m.ExpiresAt.Before(now) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		// keys are deleted after the iteration; bbolt forbids mutating during ForEach
		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}
