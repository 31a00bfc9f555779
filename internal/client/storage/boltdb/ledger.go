package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/models"
)

// SaveOperations overwrites the stored pending-operations array
func (s *Storage) SaveOperations(ctx context.Context, ops []*models.SyncOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal operations: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		if bucket == nil {
			return fmt.Errorf("ledger bucket missing")
		}
		return bucket.Put(keyPendingOps, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save operations: %w", err)
	}

	return nil
}

// LoadOperations returns the stored pending operations in ledger order
func (s *Storage) LoadOperations(ctx context.Context) ([]*models.SyncOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.SyncOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keyPendingOps)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &ops); err != nil {
			return fmt.Errorf("failed to unmarshal operations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}

	return ops, nil
}

// SaveConflicts overwrites the stored unresolved-conflicts array
func (s *Storage) SaveConflicts(ctx context.Context, conflicts []*models.SyncConflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflicts)
	if err != nil {
		return fmt.Errorf("failed to marshal conflicts: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		if bucket == nil {
			return fmt.Errorf("ledger bucket missing")
		}
		return bucket.Put(keyConflicts, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save conflicts: %w", err)
	}

	return nil
}

// LoadConflicts returns the stored unresolved conflicts
func (s *Storage) LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keyConflicts)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &conflicts); err != nil {
			return fmt.Errorf("failed to unmarshal conflicts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicts: %w", err)
	}

	return conflicts, nil
}
