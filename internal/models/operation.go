package models

import (
	"encoding/json"
	"fmt"
)

// OperationKind is the mutation type of a sync operation
type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// EntityType identifies which entity a sync operation mutates
type EntityType string

const (
	EntityLead     EntityType = "lead"
	EntityTask     EntityType = "task"
	EntityActivity EntityType = "activity"
)

// OperationStatus is the lifecycle state of a sync operation
type OperationStatus string

const (
	OpStatusPending OperationStatus = "pending"
	OpStatusSyncing OperationStatus = "syncing"
	OpStatusSynced  OperationStatus = "synced"
	OpStatusFailed  OperationStatus = "failed"
)

// OperationPayload is a tagged union over the three entity kinds. Exactly
// one field is non-nil; which one must agree with the operation's Entity.
// Keeping the payloads typed prevents cross-entity field confusion when
// conflicts are merged.
type OperationPayload struct {
	Lead     *Lead     `json:"lead,omitempty"`
	Task     *Task     `json:"task,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

// Entity returns the entity type the payload carries
func (p OperationPayload) Entity() (EntityType, error) {
	switch {
	case p.Lead != nil:
		return EntityLead, nil
	case p.Task != nil:
		return EntityTask, nil
	case p.Activity != nil:
		return EntityActivity, nil
	}
	return "", fmt.Errorf("payload carries no entity")
}

// Value returns the payload as a marshalable value for dispatch to the
// backend, without the union wrapper.
func (p OperationPayload) Value() (any, error) {
	switch {
	case p.Lead != nil:
		return p.Lead, nil
	case p.Task != nil:
		return p.Task, nil
	case p.Activity != nil:
		return p.Activity, nil
	}
	return nil, fmt.Errorf("payload carries no entity")
}

// SyncOperation is one durable record of a mutation pending against the
// backend. Operations are appended to the ledger in Pending state and stay
// there until synced, failed past the retry ceiling, or discarded through
// conflict resolution.
type SyncOperation struct {
	ID        string           `json:"id"`
	Kind      OperationKind    `json:"kind"`
	Entity    EntityType       `json:"entity"`
	EntityID  string           `json:"entityId"`
	Payload   OperationPayload `json:"payload"`
	Status    OperationStatus  `json:"status"`
	LastError string           `json:"lastError,omitempty"`
	CreatedAt int64            `json:"createdAt"` // epoch milliseconds
	Attempts  int              `json:"attempts"`
}

// FunctionName derives the backend function handling this operation,
// e.g. update+lead -> "updateLead".
func (op *SyncOperation) FunctionName() string {
	var entity string
	switch op.Entity {
	case EntityLead:
		entity = "Lead"
	case EntityTask:
		entity = "Task"
	case EntityActivity:
		entity = "Activity"
	}
	return string(op.Kind) + entity
}

// Resolution is the caller's decision on a sync conflict
type Resolution string

const (
	ResolutionLocal  Resolution = "local"
	ResolutionServer Resolution = "server"
	ResolutionMerge  Resolution = "merge"
)

// SyncConflict pairs a pending operation with the diverged server state.
// Produced during a sync pass, consumed by explicit resolution.
type SyncConflict struct {
	Operation  *SyncOperation  `json:"operation"`
	ServerData json.RawMessage `json:"serverData"`
	LocalData  json.RawMessage `json:"localData"`
	Resolution Resolution      `json:"resolution,omitempty"`
}
