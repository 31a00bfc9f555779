package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memLedger keeps the persisted operations and conflicts in memory so
// tests can make assertions about what survives a sync pass
type memLedger struct {
	mu        sync.Mutex
	ops       []*models.SyncOperation
	conflicts []*models.SyncConflict
}

func (l *memLedger) SaveOperations(ctx context.Context, ops []*models.SyncOperation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append([]*models.SyncOperation(nil), ops...)
	return nil
}

func (l *memLedger) LoadOperations(ctx context.Context) ([]*models.SyncOperation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*models.SyncOperation(nil), l.ops...), nil
}

func (l *memLedger) SaveConflicts(ctx context.Context, conflicts []*models.SyncConflict) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conflicts = append([]*models.SyncConflict(nil), conflicts...)
	return nil
}

func (l *memLedger) LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*models.SyncConflict(nil), l.conflicts...), nil
}

func newMetaMock() (*storage.MetadataStorageMock, *int64) {
	var lastSync int64
	mock := &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context) (int64, error) {
			return lastSync, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, ts int64) error {
			lastSync = ts
			return nil
		},
	}
	return mock, &lastSync
}

func okResponse() *api.Response {
	return &api.Response{Success: true}
}

func newTestService(t *testing.T, apiMock *httpClient.ClientAPIMock) (Service, *memLedger) {
	t.Helper()

	ledger := &memLedger{}
	metaMock, _ := newMetaMock()

	svc, err := NewService(context.Background(), apiMock, ledger, metaMock, testLogger())
	require.NoError(t, err)
	return svc, ledger
}

func TestQueueLeadOperation(t *testing.T) {
	svc, ledger := newTestService(t, &httpClient.ClientAPIMock{})
	ctx := context.Background()

	lead := &models.Lead{Name: "Acme Corp"}
	op, err := svc.QueueLeadOperation(ctx, models.OpCreate, lead)
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID, "a missing lead id is assigned at queue time")
	assert.Equal(t, models.EntityLead, op.Entity)
	assert.Equal(t, lead.ID, op.EntityID)
	assert.Equal(t, models.OpStatusPending, op.Status)
	assert.Equal(t, "createLead", op.FunctionName())

	persisted, err := ledger.LoadOperations(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, op.ID, persisted[0].ID)
}

func TestQueueTaskOperationBindsLead(t *testing.T) {
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{})

	task := &models.Task{Title: "Call back"}
	op, err := svc.QueueTaskOperation(context.Background(), models.OpUpdate, task, "lead-1")
	require.NoError(t, err)

	assert.Equal(t, "lead-1", task.LeadID)
	assert.Equal(t, models.EntityTask, op.Entity)
	assert.Equal(t, "updateTask", op.FunctionName())
}

func TestSyncPendingOperationsInOrder(t *testing.T) {
	var functions []string
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			functions = append(functions, function)
			return okResponse(), nil
		},
	}
	svc, ledger := newTestService(t, apiMock)
	ctx := context.Background()

	_, err := svc.QueueLeadOperation(ctx, models.OpCreate, &models.Lead{Name: "First"})
	require.NoError(t, err)
	_, err = svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-2", Name: "Second"})
	require.NoError(t, err)
	_, err = svc.QueueLeadOperation(ctx, models.OpDelete, &models.Lead{ID: "lead-3"})
	require.NoError(t, err)

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"createLead", "updateLead", "deleteLead"}, functions)
	assert.Len(t, result.Synced, 3)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Conflicts)

	// synced operations are purged from the persisted ledger
	persisted, err := ledger.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)

	st := svc.Status()
	assert.Equal(t, 0, st.PendingCount)
	assert.Greater(t, st.LastSyncTime, int64(0))
}

func TestSyncRetriesThenFailsPermanently(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return nil, errors.New("backend unreachable")
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	op, err := svc.QueueLeadOperation(ctx, models.OpCreate, &models.Lead{Name: "Flaky"})
	require.NoError(t, err)

	// first two passes keep the operation pending with growing attempts
	for i := 1; i < maxSyncAttempts; i++ {
		result, err := svc.SyncPendingOperations(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Failed)
		assert.Equal(t, i, op.Attempts)
		assert.Equal(t, models.OpStatusPending, op.Status)
	}

	// the third pass moves it to failed
	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, models.OpStatusFailed, op.Status)
	assert.Equal(t, "backend unreachable", op.LastError)

	st := svc.Status()
	assert.Equal(t, 1, st.PendingCount, "failed operations stay in the ledger")
	assert.Equal(t, 1, st.FailedCount)

	// further passes skip it
	result, err = svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Synced)
}

func TestSyncRejectedOperationCarriesServerError(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{Success: false, Error: "lead name cannot be empty"}, nil
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	op, err := svc.QueueLeadOperation(ctx, models.OpCreate, &models.Lead{})
	require.NoError(t, err)

	_, err = svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	assert.Contains(t, op.LastError, "lead name cannot be empty")
}

func TestSyncCollectsConflicts(t *testing.T) {
	serverVersion := json.RawMessage(`{"id":"lead-1","name":"Server Name","updatedAt":"2026-01-02T10:00:00Z"}`)
	localVersion := json.RawMessage(`{"id":"lead-1","name":"Local Name","updatedAt":"2026-01-01T10:00:00Z"}`)

	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{
				Success:  true,
				Conflict: &api.ConflictPayload{Server: serverVersion, Local: localVersion},
			}, nil
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	op, err := svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-1", Name: "Local Name"})
	require.NoError(t, err)

	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	conflict := result.Conflicts[0]
	assert.Equal(t, op.ID, conflict.Operation.ID)
	assert.JSONEq(t, string(serverVersion), string(conflict.ServerData))

	// the operation stays pending awaiting resolution
	assert.Equal(t, models.OpStatusPending, op.Status)
	assert.Len(t, svc.Conflicts(), 1)
	assert.Equal(t, 1, svc.Status().ConflictCount)
}

func TestConflictsSurviveRestart(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{
				Success: true,
				Conflict: &api.ConflictPayload{
					Server: json.RawMessage(`{"id":"lead-1","name":"Server"}`),
					Local:  json.RawMessage(`{"id":"lead-1","name":"Local"}`),
				},
			}, nil
		},
	}
	ledger := &memLedger{}
	metaMock, _ := newMetaMock()
	ctx := context.Background()

	svc, err := NewService(ctx, apiMock, ledger, metaMock, testLogger())
	require.NoError(t, err)

	op, err := svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-1", Name: "Local"})
	require.NoError(t, err)
	result, err := svc.SyncPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)

	// the client runs one process per command, so the conflict found by
	// one invocation must be visible to the next
	svc2, err := NewService(ctx, apiMock, ledger, metaMock, testLogger())
	require.NoError(t, err)

	conflicts := svc2.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, op.ID, conflicts[0].Operation.ID)
	assert.Equal(t, 1, svc2.Status().PendingCount)
	assert.Equal(t, 1, svc2.Status().ConflictCount)

	// resolving in the new process clears both the conflict and the
	// stranded operation
	require.NoError(t, svc2.ResolveConflict(ctx, conflicts[0], models.ResolutionServer))
	assert.Empty(t, svc2.Conflicts())
	assert.Equal(t, 0, svc2.Status().PendingCount)

	persisted, err := ledger.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
	savedConflicts, err := ledger.LoadConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, savedConflicts)
}

func TestStatusSafeDuringSyncPass(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			time.Sleep(time.Millisecond)
			return okResponse(), nil
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.QueueLeadOperation(ctx, models.OpCreate, &models.Lead{Name: "Acme"})
		require.NoError(t, err)
	}

	// poll Status while the pass mutates operation state on another
	// goroutine; the run must stay race-free
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.SyncPendingOperations(ctx)
		assert.NoError(t, err)
	}()

	for {
		select {
		case <-done:
			assert.Equal(t, 0, svc.Status().PendingCount)
			return
		default:
			_ = svc.Status()
		}
	}
}

func TestResolveConflictServer(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{
				Success: true,
				Conflict: &api.ConflictPayload{
					Server: json.RawMessage(`{"id":"lead-1","name":"Server"}`),
					Local:  json.RawMessage(`{"id":"lead-1","name":"Local"}`),
				},
			}, nil
		},
	}
	svc, ledger := newTestService(t, apiMock)
	ctx := context.Background()

	_, err := svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-1", Name: "Local"})
	require.NoError(t, err)
	_, err = svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	conflicts := svc.Conflicts()
	require.Len(t, conflicts, 1)

	// accepting the server version drops the local operation entirely
	require.NoError(t, svc.ResolveConflict(ctx, conflicts[0], models.ResolutionServer))

	assert.Empty(t, svc.Conflicts())
	assert.Equal(t, 0, svc.Status().PendingCount)

	persisted, err := ledger.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestResolveConflictLocal(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{
				Success: true,
				Conflict: &api.ConflictPayload{
					Server: json.RawMessage(`{"id":"lead-1","name":"Server"}`),
					Local:  json.RawMessage(`{"id":"lead-1","name":"Local"}`),
				},
			}, nil
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	op, err := svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-1", Name: "Local"})
	require.NoError(t, err)
	_, err = svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	conflicts := svc.Conflicts()
	require.Len(t, conflicts, 1)

	require.NoError(t, svc.ResolveConflict(ctx, conflicts[0], models.ResolutionLocal))

	assert.Empty(t, svc.Conflicts())
	assert.Equal(t, models.OpStatusPending, op.Status)
	assert.Equal(t, 0, op.Attempts, "retry budget resets for the re-armed operation")
	assert.Equal(t, 1, svc.Status().PendingCount)
}

func TestResolveConflictMerge(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			return &api.Response{
				Success: true,
				Conflict: &api.ConflictPayload{
					Server: json.RawMessage(`{"id":"lead-1","name":"Server","assignedTo":"sara","updatedAt":"2020-01-01T00:00:00Z"}`),
					Local:  json.RawMessage(`{"id":"lead-1","name":"Local","notes":"call monday"}`),
				},
			}, nil
		},
	}
	svc, _ := newTestService(t, apiMock)
	ctx := context.Background()

	op, err := svc.QueueLeadOperation(ctx, models.OpUpdate, &models.Lead{ID: "lead-1", Name: "Local", Notes: "call monday"})
	require.NoError(t, err)
	_, err = svc.SyncPendingOperations(ctx)
	require.NoError(t, err)

	conflicts := svc.Conflicts()
	require.Len(t, conflicts, 1)

	require.NoError(t, svc.ResolveConflict(ctx, conflicts[0], models.ResolutionMerge))

	require.NotNil(t, op.Payload.Lead)
	// the operation is newer than the server version, so local fields win
	// and server-only fields are preserved
	assert.Equal(t, "Local", op.Payload.Lead.Name)
	assert.Equal(t, "call monday", op.Payload.Lead.Notes)
	assert.Equal(t, "sara", op.Payload.Lead.AssignedTo)
	assert.Equal(t, models.OpStatusPending, op.Status)
}

func TestResolveConflictUnknownResolution(t *testing.T) {
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{})

	conflict := &models.SyncConflict{Operation: &models.SyncOperation{}}
	err := svc.ResolveConflict(context.Background(), conflict, models.Resolution("flip-a-coin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resolution")
}

func TestFullSync(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			require.Equal(t, "getAllData", function)
			return &api.Response{
				Success: true,
				Data:    json.RawMessage(`{"leads":[{"id":"lead-1","name":"Acme"}],"tasks":[],"activities":[]}`),
			}, nil
		},
	}
	metaMock, lastSync := newMetaMock()
	svc, err := NewService(context.Background(), apiMock, &memLedger{}, metaMock, testLogger())
	require.NoError(t, err)

	data, err := svc.FullSync(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Leads, 1)
	assert.Equal(t, "Acme", data.Leads[0].Name)
	assert.Greater(t, *lastSync, int64(0), "full sync advances the persisted sync time")
}

func TestIncrementalSync(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			require.Equal(t, "getChanges", function)
			return &api.Response{
				Success: true,
				Data:    json.RawMessage(`{"leads":[{"id":"lead-1","name":"Acme"}],"deletedLeads":["lead-2"]}`),
			}, nil
		},
	}
	svc, _ := newTestService(t, apiMock)

	changes, err := svc.IncrementalSync(context.Background())
	require.NoError(t, err)

	assert.Len(t, changes.Leads, 1)
	assert.Equal(t, []string{"lead-2"}, changes.DeletedLeads)
}

func TestClearPendingOperations(t *testing.T) {
	svc, ledger := newTestService(t, &httpClient.ClientAPIMock{})
	ctx := context.Background()

	_, err := svc.QueueLeadOperation(ctx, models.OpCreate, &models.Lead{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearPendingOperations(ctx))

	assert.Equal(t, 0, svc.Status().PendingCount)
	persisted, err := ledger.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestNewServiceRestoresLedger(t *testing.T) {
	ledger := &memLedger{ops: []*models.SyncOperation{
		{ID: "lead_a_1", Entity: models.EntityLead, Status: models.OpStatusPending},
		{ID: "lead_b_2", Entity: models.EntityLead, Status: models.OpStatusPending},
	}}
	metaMock, _ := newMetaMock()

	svc, err := NewService(context.Background(), &httpClient.ClientAPIMock{}, ledger, metaMock, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, svc.Status().PendingCount)
}
