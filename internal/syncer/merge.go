package syncer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/leadsync/internal/models"
)

// mergeConflict produces a field-wise merge of the server and local
// versions of a conflicted entity. The local side wins only if the
// operation was recorded after the server's updatedAt; a server version
// without updatedAt cannot prove it is newer, so local wins.
func mergeConflict(conflict *models.SyncConflict) (models.OperationPayload, error) {
	var serverMap, localMap map[string]any

	if err := json.Unmarshal(conflict.ServerData, &serverMap); err != nil {
		return models.OperationPayload{}, fmt.Errorf("failed to decode server data: %w", err)
	}
	if err := json.Unmarshal(conflict.LocalData, &localMap); err != nil {
		return models.OperationPayload{}, fmt.Errorf("failed to decode local data: %w", err)
	}

	localWins := conflict.Operation.CreatedAt > serverUpdatedAt(serverMap)

	merged := deepMerge(serverMap, localMap, localWins)

	return payloadFromMap(conflict.Operation.Entity, merged)
}

// serverUpdatedAt extracts the server's last-modified time as epoch
// milliseconds. Returns a negative value when absent or unparseable, so
// any real operation timestamp beats it.
func serverUpdatedAt(serverMap map[string]any) int64 {
	raw, ok := serverMap["updatedAt"]
	if !ok {
		return -1
	}

	switch v := raw.(type) {
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return -1
		}
		return ts.UnixMilli()
	case float64:
		return int64(v)
	}
	return -1
}

// deepMerge overlays local fields onto a copy of the server version.
// Nested objects merge recursively; at scalar leaves the local value
// replaces the server's only when localWins holds.
func deepMerge(server, local map[string]any, localWins bool) map[string]any {
	out := make(map[string]any, len(server)+len(local))
	for k, v := range server {
		out[k] = v
	}

	for k, lv := range local {
		sv, exists := out[k]
		if !exists {
			out[k] = lv
			continue
		}

		lm, lIsMap := lv.(map[string]any)
		sm, sIsMap := sv.(map[string]any)
		if lIsMap && sIsMap {
			out[k] = deepMerge(sm, lm, localWins)
			continue
		}

		if localWins && lv != nil {
			out[k] = lv
		}
	}

	return out
}

// payloadFromMap rebuilds a typed payload from the merged field map
func payloadFromMap(entity models.EntityType, merged map[string]any) (models.OperationPayload, error) {
	data, err := json.Marshal(merged)
	if err != nil {
		return models.OperationPayload{}, fmt.Errorf("failed to encode merged data: %w", err)
	}

	switch entity {
	case models.EntityLead:
		var lead models.Lead
		if err := json.Unmarshal(data, &lead); err != nil {
			return models.OperationPayload{}, fmt.Errorf("failed to decode merged lead: %w", err)
		}
		return models.OperationPayload{Lead: &lead}, nil
	case models.EntityTask:
		var task models.Task
		if err := json.Unmarshal(data, &task); err != nil {
			return models.OperationPayload{}, fmt.Errorf("failed to decode merged task: %w", err)
		}
		return models.OperationPayload{Task: &task}, nil
	case models.EntityActivity:
		var activity models.Activity
		if err := json.Unmarshal(data, &activity); err != nil {
			return models.OperationPayload{}, fmt.Errorf("failed to decode merged activity: %w", err)
		}
		return models.OperationPayload{Activity: &activity}, nil
	}

	return models.OperationPayload{}, fmt.Errorf("unknown entity type: %s", entity)
}
