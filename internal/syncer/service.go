// Package syncer keeps the ledger of mutations pending against the
// backend, replays them in order when connectivity allows, and surfaces
// conflicts for explicit resolution.
package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/pkg/api"
)

// maxSyncAttempts is the retry ceiling per operation; past it the
// operation moves to Failed and is excluded from automatic passes
const maxSyncAttempts = 3

//go:generate moq -out service_mock.go . Service

// Service defines the sync ledger interface
type Service interface {
	// QueueLeadOperation appends a pending lead mutation to the ledger
	QueueLeadOperation(ctx context.Context, kind models.OperationKind, lead *models.Lead) (*models.SyncOperation, error)

	// QueueTaskOperation appends a pending task mutation to the ledger
	QueueTaskOperation(ctx context.Context, kind models.OperationKind, task *models.Task, leadID string) (*models.SyncOperation, error)

	// QueueActivityOperation appends a pending activity mutation
	QueueActivityOperation(ctx context.Context, kind models.OperationKind, activity *models.Activity, leadID string) (*models.SyncOperation, error)

	// SyncPendingOperations replays all non-synced operations in ledger
	// order and classifies each outcome
	SyncPendingOperations(ctx context.Context) (*SyncResult, error)

	// ResolveConflict applies the caller's decision to a conflict
	ResolveConflict(ctx context.Context, conflict *models.SyncConflict, resolution models.Resolution) error

	// Conflicts returns the conflicts collected by the last sync pass
	Conflicts() []*models.SyncConflict

	// Status reports the signal callers poll to decide whether a sync
	// pass is worth running
	Status() SyncStatus

	// FullSync fetches the complete dataset from the backend
	FullSync(ctx context.Context) (*FullData, error)

	// IncrementalSync fetches changes since the last sync time
	IncrementalSync(ctx context.Context) (*api.ChangesResponse, error)

	// ClearPendingOperations discards all pending operations and conflicts
	ClearPendingOperations(ctx context.Context) error
}

// SyncResult contains the outcome of one sync pass
type SyncResult struct {
	Synced    []*models.SyncOperation
	Failed    []*models.SyncOperation
	Conflicts []*models.SyncConflict
}

// SyncStatus is the polled summary of the ledger
type SyncStatus struct {
	LastSyncTime  int64 `json:"lastSyncTime"` // epoch milliseconds
	PendingCount  int   `json:"pendingCount"`
	FailedCount   int   `json:"failedCount"`
	ConflictCount int   `json:"conflictCount"`
	IsSyncing     bool  `json:"isSyncing"`
}

// FullData is the complete dataset returned by FullSync
type FullData struct {
	Leads      []models.Lead     `json:"leads"`
	Tasks      []models.Task     `json:"tasks"`
	Activities []models.Activity `json:"activities"`
}

type service struct {
	apiClient    httpClient.ClientAPI
	ledgerStore  storage.LedgerStorage
	metaStore    storage.MetadataStorage
	logger       *slog.Logger
	pending      []*models.SyncOperation
	conflicts    []*models.SyncConflict
	lastSyncTime int64
	isSyncing    bool
	mu           sync.Mutex
}

// NewService creates a sync ledger, reloading pending operations and the
// last sync time persisted by previous sessions
func NewService(ctx context.Context, apiClient httpClient.ClientAPI, ledgerStore storage.LedgerStorage, metaStore storage.MetadataStorage, logger *slog.Logger) (Service, error) {
	s := &service{
		apiClient:   apiClient,
		ledgerStore: ledgerStore,
		metaStore:   metaStore,
		logger:      logger,
	}

	pending, err := ledgerStore.LoadOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending operations: %w", err)
	}
	s.pending = pending

	conflicts, err := ledgerStore.LoadConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicts: %w", err)
	}
	// the stored conflict carries its own copy of the operation; relink it
	// to the ledger entry so a resolution mutates the operation that will
	// actually be replayed
	for _, conflict := range conflicts {
		for _, op := range pending {
			if conflict.Operation != nil && op.ID == conflict.Operation.ID {
				conflict.Operation = op
				break
			}
		}
	}
	s.conflicts = conflicts

	lastSync, err := metaStore.GetLastSyncTime(ctx)
	if err != nil {
		logger.Warn("failed to load last sync time, using 0", "error", err)
		lastSync = 0
	}
	s.lastSyncTime = lastSync

	if len(pending) > 0 {
		logger.Info("restored pending operations",
			"count", len(pending),
			"conflicts", len(conflicts))
	}

	return s, nil
}

// QueueLeadOperation appends a pending lead mutation to the ledger
func (s *service) QueueLeadOperation(ctx context.Context, kind models.OperationKind, lead *models.Lead) (*models.SyncOperation, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	return s.queueOperation(ctx, kind, lead.ID, models.OperationPayload{Lead: lead})
}

// QueueTaskOperation appends a pending task mutation to the ledger
func (s *service) QueueTaskOperation(ctx context.Context, kind models.OperationKind, task *models.Task, leadID string) (*models.SyncOperation, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.LeadID = leadID
	return s.queueOperation(ctx, kind, task.ID, models.OperationPayload{Task: task})
}

// QueueActivityOperation appends a pending activity mutation
func (s *service) QueueActivityOperation(ctx context.Context, kind models.OperationKind, activity *models.Activity, leadID string) (*models.SyncOperation, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.LeadID = leadID
	return s.queueOperation(ctx, kind, activity.ID, models.OperationPayload{Activity: activity})
}

// queueOperation builds the operation record, appends it to the ledger
// and persists the pending list
func (s *service) queueOperation(ctx context.Context, kind models.OperationKind, entityID string, payload models.OperationPayload) (*models.SyncOperation, error) {
	entity, err := payload.Entity()
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	op := &models.SyncOperation{
		ID:        fmt.Sprintf("%s_%s_%d", entity, entityID, now),
		Kind:      kind,
		Entity:    entity,
		EntityID:  entityID,
		Payload:   payload,
		CreatedAt: now,
		Status:    models.OpStatusPending,
	}

	s.mu.Lock()
	s.pending = append(s.pending, op)
	s.mu.Unlock()

	if err := s.persistPending(ctx); err != nil {
		return nil, err
	}

	s.logger.Debug("queued operation",
		"id", op.ID,
		"kind", kind,
		"entity", entity,
		"entity_id", entityID)

	return op, nil
}

// SyncPendingOperations replays all non-synced operations in ledger order
// (oldest first). Each operation is dispatched to the backend function
// derived from its kind and entity; the outcome is classified as synced,
// conflicted, or retried. After the pass, synced operations are purged,
// the conflict set is replaced, and lastSyncTime advances.
func (s *service) SyncPendingOperations(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		return nil, fmt.Errorf("sync already in progress")
	}
	s.isSyncing = true
	ops := append([]*models.SyncOperation(nil), s.pending...)
	s.mu.Unlock()

	s.logger.Info("starting sync pass", "pending", len(ops))

	result := &SyncResult{}

	for _, op := range ops {
		// operations are shared with s.pending, so every state
		// transition happens under the lock; only the backend call runs
		// unlocked
		s.mu.Lock()
		if op.Status == models.OpStatusSynced || op.Status == models.OpStatusFailed {
			s.mu.Unlock()
			continue
		}
		op.Status = models.OpStatusSyncing
		s.mu.Unlock()

		conflict, err := s.applyOperation(ctx, op)

		s.mu.Lock()
		switch {
		case err != nil:
			op.Attempts++
			op.LastError = err.Error()
			if op.Attempts < maxSyncAttempts {
				op.Status = models.OpStatusPending
			} else {
				op.Status = models.OpStatusFailed
				result.Failed = append(result.Failed, op)
				s.logger.Warn("operation failed permanently",
					"id", op.ID,
					"attempts", op.Attempts,
					"error", err)
			}
		case conflict != nil:
			op.Status = models.OpStatusPending
			result.Conflicts = append(result.Conflicts, conflict)
			s.logger.Info("conflict detected", "id", op.ID, "entity_id", op.EntityID)
		default:
			op.Status = models.OpStatusSynced
			result.Synced = append(result.Synced, op)
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	// purge synced operations; stale conflicts are replaced wholesale
	kept := s.pending[:0]
	for _, op := range s.pending {
		if op.Status != models.OpStatusSynced {
			kept = append(kept, op)
		}
	}
	s.pending = kept
	s.conflicts = result.Conflicts
	s.lastSyncTime = time.Now().UnixMilli()
	lastSync := s.lastSyncTime
	s.isSyncing = false
	s.mu.Unlock()

	if err := s.persistPending(ctx); err != nil {
		s.logger.Error("failed to persist ledger after sync", "error", err)
	}
	// conflicts survive the process: each CLI invocation is a fresh
	// process, and the conflict found by `sync` must still be there when
	// `conflicts` or `resolve` runs
	if err := s.persistConflicts(ctx); err != nil {
		s.logger.Error("failed to persist conflicts after sync", "error", err)
	}
	if err := s.metaStore.SaveLastSyncTime(ctx, lastSync); err != nil {
		s.logger.Warn("failed to save last sync time", "error", err)
	}

	s.logger.Info("sync pass completed",
		"synced", len(result.Synced),
		"failed", len(result.Failed),
		"conflicts", len(result.Conflicts))

	return result, nil
}

// applyOperation dispatches one operation to the backend. A non-nil
// conflict means the write was not applied because the entity changed
// concurrently; an error means the call itself failed.
func (s *service) applyOperation(ctx context.Context, op *models.SyncOperation) (*models.SyncConflict, error) {
	payload, err := op.Payload.Value()
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Execute(ctx, op.FunctionName(), payload)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		if resp.Error != "" {
			return nil, fmt.Errorf("operation rejected: %s", resp.Error)
		}
		return nil, fmt.Errorf("operation failed")
	}

	if resp.Conflict != nil {
		return &models.SyncConflict{
			Operation:  op,
			ServerData: resp.Conflict.Server,
			LocalData:  resp.Conflict.Local,
		}, nil
	}

	return nil, nil
}

// ResolveConflict applies the caller's decision:
//   - local: re-arm the operation so the next pass retries the client's
//     version as-is
//   - server: discard the operation, accepting the backend's version
//   - merge: rewrite the payload to a field-wise merge of both versions,
//     then re-arm
//
// All three remove the conflict from the pending conflict set.
func (s *service) ResolveConflict(ctx context.Context, conflict *models.SyncConflict, resolution models.Resolution) error {
	conflict.Resolution = resolution
	op := conflict.Operation

	switch resolution {
	case models.ResolutionLocal:
		s.mu.Lock()
		op.Status = models.OpStatusPending
		op.Attempts = 0
		s.mu.Unlock()

	case models.ResolutionServer:
		s.mu.Lock()
		kept := s.pending[:0]
		for _, pending := range s.pending {
			if pending.ID != op.ID {
				kept = append(kept, pending)
			}
		}
		s.pending = kept
		s.mu.Unlock()

	case models.ResolutionMerge:
		merged, err := mergeConflict(conflict)
		if err != nil {
			return fmt.Errorf("failed to merge conflict: %w", err)
		}
		s.mu.Lock()
		op.Payload = merged
		op.Status = models.OpStatusPending
		op.Attempts = 0
		s.mu.Unlock()

	default:
		return fmt.Errorf("unknown resolution: %s", resolution)
	}

	s.mu.Lock()
	kept := s.conflicts[:0]
	for _, c := range s.conflicts {
		if c.Operation.ID != op.ID {
			kept = append(kept, c)
		}
	}
	s.conflicts = kept
	s.mu.Unlock()

	if err := s.persistPending(ctx); err != nil {
		return err
	}
	return s.persistConflicts(ctx)
}

// Conflicts returns the conflicts collected by the last sync pass
func (s *service) Conflicts() []*models.SyncConflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.SyncConflict(nil), s.conflicts...)
}

// Status reports ledger counters for callers polling sync health
func (s *service) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SyncStatus{
		IsSyncing:     s.isSyncing,
		LastSyncTime:  s.lastSyncTime,
		PendingCount:  len(s.pending),
		ConflictCount: len(s.conflicts),
	}
	for _, op := range s.pending {
		if op.Status == models.OpStatusFailed {
			st.FailedCount++
		}
	}
	return st
}

// FullSync fetches the complete dataset from the backend
func (s *service) FullSync(ctx context.Context) (*FullData, error) {
	s.mu.Lock()
	lastSync := s.lastSyncTime
	s.mu.Unlock()

	resp, err := s.apiClient.Execute(ctx, "getAllData", map[string]int64{"lastSyncTime": lastSync})
	if err != nil {
		return nil, fmt.Errorf("full sync failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("full sync failed: %s", resp.Error)
	}

	var data FullData
	if err := unmarshalData(resp.Data, &data); err != nil {
		return nil, err
	}

	s.advanceLastSync(ctx)
	return &data, nil
}

// IncrementalSync fetches changes since the last sync time
func (s *service) IncrementalSync(ctx context.Context) (*api.ChangesResponse, error) {
	s.mu.Lock()
	lastSync := s.lastSyncTime
	s.mu.Unlock()

	resp, err := s.apiClient.Execute(ctx, "getChanges", map[string]int64{"since": lastSync})
	if err != nil {
		return nil, fmt.Errorf("incremental sync failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("incremental sync failed: %s", resp.Error)
	}

	var changes api.ChangesResponse
	if err := unmarshalData(resp.Data, &changes); err != nil {
		return nil, err
	}

	s.advanceLastSync(ctx)
	return &changes, nil
}

// ClearPendingOperations discards all pending operations and conflicts
func (s *service) ClearPendingOperations(ctx context.Context) error {
	s.mu.Lock()
	s.pending = nil
	s.conflicts = nil
	s.mu.Unlock()

	if err := s.persistPending(ctx); err != nil {
		return err
	}
	return s.persistConflicts(ctx)
}

// advanceLastSync moves lastSyncTime to now and persists it
func (s *service) advanceLastSync(ctx context.Context) {
	s.mu.Lock()
	s.lastSyncTime = time.Now().UnixMilli()
	lastSync := s.lastSyncTime
	s.mu.Unlock()

	if err := s.metaStore.SaveLastSyncTime(ctx, lastSync); err != nil {
		s.logger.Warn("failed to save last sync time", "error", err)
	}
}

// unmarshalData decodes the data field of a successful response
func unmarshalData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// persistPending saves the full pending list
func (s *service) persistPending(ctx context.Context) error {
	s.mu.Lock()
	ops := append([]*models.SyncOperation(nil), s.pending...)
	s.mu.Unlock()

	if err := s.ledgerStore.SaveOperations(ctx, ops); err != nil {
		return fmt.Errorf("failed to persist pending operations: %w", err)
	}
	return nil
}

// persistConflicts saves the unresolved conflict set
func (s *service) persistConflicts(ctx context.Context) error {
	s.mu.Lock()
	conflicts := append([]*models.SyncConflict(nil), s.conflicts...)
	s.mu.Unlock()

	if err := s.ledgerStore.SaveConflicts(ctx, conflicts); err != nil {
		return fmt.Errorf("failed to persist conflicts: %w", err)
	}
	return nil
}
