package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leadsync/internal/client/storage"
)

// SaveCacheSnapshot overwrites the snapshot stored under storageKey
func (s *Storage) SaveCacheSnapshot(ctx context.Context, storageKey string, entries map[string]json.RawMessage) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal cache snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket missing")
		}
		return bucket.Put([]byte(storageKey), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save cache snapshot: %w", err)
	}

	return nil
}

// LoadCacheSnapshot returns the snapshot stored under storageKey, or an
// empty map when nothing has been persisted yet
func (s *Storage) LoadCacheSnapshot(ctx context.Context, storageKey string) (map[string]json.RawMessage, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	entries := make(map[string]json.RawMessage)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(storageKey))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to unmarshal cache snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load cache snapshot: %w", err)
	}

	return entries, nil
}
