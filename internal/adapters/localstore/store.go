// Package localstore keeps mma_cli sessions and journal drafts in a bbolt file, the
// command-line counterpart of a browser's local storage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketSessions = "sessions"
	bucketDrafts   = "drafts"
	bucketMeta     = "meta"

	keyCurrentSession = "current_session"
)

// Store wraps the bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the store at path and initializes its buckets.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketSessions, bucketDrafts, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CurrentSessionID returns the session the CLI is logged in with.
func (s *Store) CurrentSessionID() (string, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketMeta)).Get([]byte(keyCurrentSession))
		if v == nil {
			return fmt.Errorf("not logged in: %w", apperrors.ErrUnauthorized)
		}
		id = string(v)
		return nil
	})
	return id, err
}

// SetCurrentSessionID records the active session; an empty ID clears it.
func (s *Store) SetCurrentSessionID(sessionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketMeta))
		if sessionID == "" {
			return b.Delete([]byte(keyCurrentSession))
		}
		return b.Put([]byte(keyCurrentSession), []byte(sessionID))
	})
}

func putJSON(b *bolt.Bucket, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return b.Put([]byte(key), data)
}

func getJSON(b *bolt.Bucket, key string, value any) error {
	data := b.Get([]byte(key))
	if data == nil {
		return apperrors.ErrNotFound
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
