// Package boltdb implements the client storage interfaces on top of a
// single bbolt database file.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketCache    = []byte("cache")
	bucketQueue    = []byte("queue")
	bucketLedger   = []byte("ledger")
	bucketMetadata = []byte("metadata")
	bucketAuth     = []byte("auth")
)

// Fixed keys inside the buckets
var (
	keyQueueMeta    = []byte("lms_request_queue")
	keyPendingOps   = []byte("lms_pending_operations")
	keyConflicts    = []byte("lms_sync_conflicts")
	keyLastSyncTime = []byte("lms_last_sync_time")
	keyAccessToken  = []byte("access_token")
)

// Storage represents the BoltDB storage implementation for the client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the buckets if they don't exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketCache, bucketQueue, bucketLedger, bucketMetadata, bucketAuth}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
