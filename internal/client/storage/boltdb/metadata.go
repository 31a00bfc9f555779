package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leadsync/internal/client/storage"
)

// SaveLastSyncTime saves the wall-clock time of the last sync pass
func (s *Storage) SaveLastSyncTime(ctx context.Context, ts int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket missing")
		}
		return bucket.Put(keyLastSyncTime, []byte(strconv.FormatInt(ts, 10)))
	})
	if err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	return nil
}

// GetLastSyncTime returns the last sync time, or 0 before the first sync
func (s *Storage) GetLastSyncTime(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var ts int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keyLastSyncTime)
		if data == nil {
			return nil
		}

		parsed, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse last sync time: %w", err)
		}
		ts = parsed
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return ts, nil
}
