// Package storage defines the client persistence interfaces. The boltdb
// subpackage provides the durable implementation; everything is stored as
// JSON values in bbolt buckets.
package storage

import (
	"context"

	"github.com/iudanet/leadsync/internal/models"
)

//go:generate moq -out ledger_mock.go . LedgerStorage

// LedgerStorage persists the pending sync operations and their
// unresolved conflicts across sessions
type LedgerStorage interface {
	// SaveOperations overwrites the stored pending-operations array
	SaveOperations(ctx context.Context, ops []*models.SyncOperation) error

	// LoadOperations returns the stored pending operations in ledger
	// order, or an empty slice if none were saved
	LoadOperations(ctx context.Context) ([]*models.SyncOperation, error)

	// SaveConflicts overwrites the stored unresolved-conflicts array
	SaveConflicts(ctx context.Context, conflicts []*models.SyncConflict) error

	// LoadConflicts returns the stored unresolved conflicts, or an empty
	// slice if none were saved
	LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error)
}

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage stores client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the wall-clock time of the last sync pass
	// in epoch milliseconds
	SaveLastSyncTime(ctx context.Context, ts int64) error

	// GetLastSyncTime returns the last sync time, or 0 when no sync has
	// been performed yet
	GetLastSyncTime(ctx context.Context) (int64, error)
}

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage stores the backend access token
type AuthStorage interface {
	// SaveToken stores the access token
	SaveToken(ctx context.Context, token string) error

	// GetToken returns the stored token
	// Returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token
	DeleteToken(ctx context.Context) error
}
