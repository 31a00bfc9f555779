package boltdb

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/queue"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetToken(ctx)
	require.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, s.SaveToken(ctx, "eyJhbGciOiJIUzI1NiJ9.test"))

	token, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.test", token)

	require.NoError(t, s.DeleteToken(ctx))
	_, err = s.GetToken(ctx)
	require.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteTokenIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.DeleteToken(context.Background()))
}

func TestOperationsRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// nothing stored yet
	ops, err := s.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	saved := []*models.SyncOperation{
		{
			ID:       "lead_a_1",
			Kind:     models.OpCreate,
			Entity:   models.EntityLead,
			EntityID: "a",
			Payload:  models.OperationPayload{Lead: &models.Lead{ID: "a", Name: "Acme"}},
			Status:   models.OpStatusPending,
		},
		{
			ID:       "task_b_2",
			Kind:     models.OpUpdate,
			Entity:   models.EntityTask,
			EntityID: "b",
			Payload:  models.OperationPayload{Task: &models.Task{ID: "b", Title: "Call"}},
			Status:   models.OpStatusFailed,
			Attempts: 3,
		},
	}
	require.NoError(t, s.SaveOperations(ctx, saved))

	loaded, err := s.LoadOperations(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "lead_a_1", loaded[0].ID)
	assert.Equal(t, "Acme", loaded[0].Payload.Lead.Name)
	assert.Equal(t, models.OpStatusFailed, loaded[1].Status)
	assert.Equal(t, 3, loaded[1].Attempts)

	// overwrite with an empty list clears the ledger
	require.NoError(t, s.SaveOperations(ctx, nil))
	loaded, err = s.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLastSyncTimeRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ts, err := s.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	require.NoError(t, s.SaveLastSyncTime(ctx, 1700000000123))

	ts, err = s.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), ts)
}

func TestQueueMetaRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	meta, err := s.LoadQueueMeta(ctx)
	require.NoError(t, err)
	assert.Empty(t, meta)

	saved := []queue.Meta{
		{ID: "req_1", Status: queue.StatusPending, Priority: 5, MaxRetries: 3},
		{ID: "req_2", Status: queue.StatusFailed, Error: "backend unreachable", Attempts: 3},
	}
	require.NoError(t, s.SaveQueueMeta(ctx, saved))

	meta, err = s.LoadQueueMeta(ctx)
	require.NoError(t, err)
	require.Len(t, meta, 2)
	assert.Equal(t, queue.StatusPending, meta[0].Status)
	assert.Equal(t, "backend unreachable", meta[1].Error)
}

func TestCacheSnapshotRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entries, err := s.LoadCacheSnapshot(ctx, "lms_cache")
	require.NoError(t, err)
	assert.Empty(t, entries)

	saved := map[string]json.RawMessage{
		"leads:all":    json.RawMessage(`{"data":[],"timestamp":1700000000000}`),
		"leads:lead-1": json.RawMessage(`{"data":{"id":"lead-1"},"timestamp":1700000000000}`),
	}
	require.NoError(t, s.SaveCacheSnapshot(ctx, "lms_cache", saved))

	entries, err = s.LoadCacheSnapshot(ctx, "lms_cache")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.JSONEq(t, string(saved["leads:all"]), string(entries["leads:all"]))

	// snapshots under different storage keys do not collide
	other, err := s.LoadCacheSnapshot(ctx, "other_cache")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	s1, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.SaveToken(ctx, "token-1"))
	require.NoError(t, s1.SaveLastSyncTime(ctx, 42))
	require.NoError(t, s1.Close())

	s2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = s2.Close()
	}()

	token, err := s2.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	ts, err := s2.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)
}

func TestOperationsAfterClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.SaveToken(context.Background(), "token")
	require.Error(t, err)
}

func TestConflictsRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	loaded, err := s.LoadConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded, "no conflicts stored yet")

	conflicts := []*models.SyncConflict{
		{
			Operation: &models.SyncOperation{
				ID:       "lead_lead-1_1",
				Kind:     models.OpUpdate,
				Entity:   models.EntityLead,
				EntityID: "lead-1",
				Status:   models.OpStatusPending,
				Payload:  models.OperationPayload{Lead: &models.Lead{ID: "lead-1", Name: "Local"}},
			},
			ServerData: json.RawMessage(`{"id":"lead-1","name":"Server"}`),
			LocalData:  json.RawMessage(`{"id":"lead-1","name":"Local"}`),
		},
	}
	require.NoError(t, s.SaveConflicts(ctx, conflicts))

	loaded, err = s.LoadConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "lead_lead-1_1", loaded[0].Operation.ID)
	assert.Equal(t, "Local", loaded[0].Operation.Payload.Lead.Name)
	assert.JSONEq(t, `{"id":"lead-1","name":"Server"}`, string(loaded[0].ServerData))

	// an empty save clears the stored set
	require.NoError(t, s.SaveConflicts(ctx, nil))
	loaded, err = s.LoadConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
