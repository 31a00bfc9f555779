package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/queue"
)

// SaveQueueMeta overwrites the persisted queue metadata. Only pending and
// failed requests are passed here; their action closures are not
// serializable and are lost across restarts.
func (s *Storage) SaveQueueMeta(ctx context.Context, meta []queue.Meta) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal queue metadata: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket missing")
		}
		return bucket.Put(keyQueueMeta, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save queue metadata: %w", err)
	}

	return nil
}

// LoadQueueMeta returns the persisted queue metadata, or an empty slice
func (s *Storage) LoadQueueMeta(ctx context.Context) ([]queue.Meta, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var meta []queue.Meta

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keyQueueMeta)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &meta); err != nil {
			return fmt.Errorf("failed to unmarshal queue metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load queue metadata: %w", err)
	}

	return meta, nil
}
