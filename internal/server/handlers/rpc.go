package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/server/middleware"
	"github.com/iudanet/leadsync/internal/server/storage"
	"github.com/iudanet/leadsync/internal/validation"
	"github.com/iudanet/leadsync/pkg/api"
)

// RPCHandler dispatches the single-endpoint function calls the client
// sends. The shape mimics the spreadsheet script backend this server
// stands in for: one POST endpoint, a function name, positional
// parameters, and an envelope response.
type RPCHandler struct {
	logger *slog.Logger
	store  storage.LeadStorage
}

// NewRPCHandler creates the RPC dispatcher
func NewRPCHandler(logger *slog.Logger, store storage.LeadStorage) *RPCHandler {
	return &RPCHandler{
		logger: logger,
		store:  store,
	}
}

// Exec handles POST /exec. Transport-level failures use HTTP status
// codes; application-level failures travel inside the envelope.
func (h *RPCHandler) Exec(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode rpc request", slog.Any("error", err))
		h.writeResponse(w, failure("invalid request body"), http.StatusBadRequest)
		return
	}

	resp := h.dispatch(ctx, &req)
	h.writeResponse(w, resp, http.StatusOK)
}

func (h *RPCHandler) dispatch(ctx context.Context, req *api.RPCRequest) api.Response {
	switch req.Function {
	case "ping":
		return success(map[string]string{"status": "ok"})
	case "getAllLeads":
		return h.getAllLeads(ctx)
	case "getLead":
		return h.getLead(ctx, req)
	case "createLead":
		return h.createLead(ctx, req)
	case "updateLead":
		return h.updateLead(ctx, req)
	case "deleteLead":
		return h.deleteLead(ctx, req)
	case "getTasks":
		return h.getTasks(ctx, req)
	case "createTask":
		return h.createTask(ctx, req)
	case "updateTask":
		return h.updateTask(ctx, req)
	case "deleteTask":
		return h.deleteTask(ctx, req)
	case "getActivities":
		return h.getActivities(ctx, req)
	case "createActivity":
		return h.createActivity(ctx, req)
	case "getChanges":
		return h.getChanges(ctx, req)
	case "getAllData":
		return h.getAllData(ctx)
	default:
		h.logger.WarnContext(ctx, "unknown rpc function", slog.String("function", req.Function))
		return failure(fmt.Sprintf("unknown function: %s", req.Function))
	}
}

func (h *RPCHandler) getAllLeads(ctx context.Context) api.Response {
	leads, err := h.store.GetAllLeads(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get leads", slog.Any("error", err))
		return failure("failed to get leads")
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return success(leads)
}

func (h *RPCHandler) getLead(ctx context.Context, req *api.RPCRequest) api.Response {
	var id string
	if err := decodeParam(req, 0, &id); err != nil {
		return failure(err.Error())
	}

	lead, err := h.store.GetLead(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrLeadNotFound) {
			return failure("lead not found")
		}
		h.logger.ErrorContext(ctx, "failed to get lead", slog.Any("error", err))
		return failure("failed to get lead")
	}
	return success(lead)
}

func (h *RPCHandler) createLead(ctx context.Context, req *api.RPCRequest) api.Response {
	var lead models.Lead
	if err := decodeParam(req, 0, &lead); err != nil {
		return failure(err.Error())
	}
	if err := validation.ValidateLead(&lead); err != nil {
		return failure(err.Error())
	}

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if lead.CreatedAt == "" {
		lead.CreatedAt = now
	}
	if lead.UpdatedAt == "" {
		lead.UpdatedAt = now
	}

	if err := h.store.SaveLead(ctx, &lead); err != nil {
		h.logger.ErrorContext(ctx, "failed to create lead", slog.Any("error", err))
		return failure("failed to create lead")
	}

	h.logger.InfoContext(ctx, "lead created",
		slog.String("id", lead.ID),
		slog.String("by", middleware.UsernameFromContext(ctx)))
	return success(lead)
}

// updateLead applies the write unless the stored row changed after the
// client produced its version; in that case both versions are returned
// as a conflict and nothing is written.
func (h *RPCHandler) updateLead(ctx context.Context, req *api.RPCRequest) api.Response {
	var lead models.Lead
	if err := decodeParam(req, 0, &lead); err != nil {
		return failure(err.Error())
	}
	if lead.ID == "" {
		return failure("lead id is required")
	}

	stored, err := h.store.GetLead(ctx, lead.ID)
	if err != nil && !errors.Is(err, storage.ErrLeadNotFound) {
		h.logger.ErrorContext(ctx, "failed to check stored lead", slog.Any("error", err))
		return failure("failed to update lead")
	}

	if stored != nil && lead.UpdatedAt != "" && stored.UpdatedAt > lead.UpdatedAt {
		h.logger.InfoContext(ctx, "update conflict",
			slog.String("id", lead.ID),
			slog.String("server_updated_at", stored.UpdatedAt),
			slog.String("local_updated_at", lead.UpdatedAt))
		return conflict(stored, &lead)
	}

	if err := h.store.SaveLead(ctx, &lead); err != nil {
		h.logger.ErrorContext(ctx, "failed to update lead", slog.Any("error", err))
		return failure("failed to update lead")
	}
	return success(lead)
}

func (h *RPCHandler) deleteLead(ctx context.Context, req *api.RPCRequest) api.Response {
	var lead models.Lead
	if err := decodeParam(req, 0, &lead); err != nil {
		return failure(err.Error())
	}
	if lead.ID == "" {
		return failure("lead id is required")
	}

	if err := h.store.DeleteLead(ctx, lead.ID); err != nil {
		if errors.Is(err, storage.ErrLeadNotFound) {
			// already gone, deletion is idempotent
			return success(map[string]bool{"deleted": false})
		}
		h.logger.ErrorContext(ctx, "failed to delete lead", slog.Any("error", err))
		return failure("failed to delete lead")
	}
	return success(map[string]bool{"deleted": true})
}

func (h *RPCHandler) getTasks(ctx context.Context, req *api.RPCRequest) api.Response {
	var leadID string
	if err := decodeParam(req, 0, &leadID); err != nil {
		return failure(err.Error())
	}

	tasks, err := h.store.GetTasksByLead(ctx, leadID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get tasks", slog.Any("error", err))
		return failure("failed to get tasks")
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return success(tasks)
}

func (h *RPCHandler) createTask(ctx context.Context, req *api.RPCRequest) api.Response {
	var task models.Task
	if err := decodeParam(req, 0, &task); err != nil {
		return failure(err.Error())
	}
	if task.Title == "" {
		return failure("task title is required")
	}

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedBy == "" {
		task.CreatedBy = middleware.UsernameFromContext(ctx)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if task.CreatedAt == "" {
		task.CreatedAt = now
	}
	if task.UpdatedAt == "" {
		task.UpdatedAt = now
	}

	if err := h.store.SaveTask(ctx, &task); err != nil {
		h.logger.ErrorContext(ctx, "failed to create task", slog.Any("error", err))
		return failure("failed to create task")
	}
	return success(task)
}

func (h *RPCHandler) updateTask(ctx context.Context, req *api.RPCRequest) api.Response {
	var task models.Task
	if err := decodeParam(req, 0, &task); err != nil {
		return failure(err.Error())
	}
	if task.ID == "" {
		return failure("task id is required")
	}

	stored, err := h.store.GetTask(ctx, task.ID)
	if err != nil && !errors.Is(err, storage.ErrTaskNotFound) {
		h.logger.ErrorContext(ctx, "failed to check stored task", slog.Any("error", err))
		return failure("failed to update task")
	}

	if stored != nil && task.UpdatedAt != "" && stored.UpdatedAt > task.UpdatedAt {
		return conflict(stored, &task)
	}

	if err := h.store.SaveTask(ctx, &task); err != nil {
		h.logger.ErrorContext(ctx, "failed to update task", slog.Any("error", err))
		return failure("failed to update task")
	}
	return success(task)
}

func (h *RPCHandler) deleteTask(ctx context.Context, req *api.RPCRequest) api.Response {
	var task models.Task
	if err := decodeParam(req, 0, &task); err != nil {
		return failure(err.Error())
	}
	if task.ID == "" {
		return failure("task id is required")
	}

	if err := h.store.DeleteTask(ctx, task.ID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return success(map[string]bool{"deleted": false})
		}
		h.logger.ErrorContext(ctx, "failed to delete task", slog.Any("error", err))
		return failure("failed to delete task")
	}
	return success(map[string]bool{"deleted": true})
}

func (h *RPCHandler) getActivities(ctx context.Context, req *api.RPCRequest) api.Response {
	var leadID string
	if err := decodeParam(req, 0, &leadID); err != nil {
		return failure(err.Error())
	}

	activities, err := h.store.GetActivitiesByLead(ctx, leadID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get activities", slog.Any("error", err))
		return failure("failed to get activities")
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return success(activities)
}

func (h *RPCHandler) createActivity(ctx context.Context, req *api.RPCRequest) api.Response {
	var activity models.Activity
	if err := decodeParam(req, 0, &activity); err != nil {
		return failure(err.Error())
	}
	if activity.Type == "" {
		return failure("activity type is required")
	}

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedBy == "" {
		activity.CreatedBy = middleware.UsernameFromContext(ctx)
	}
	if activity.Timestamp == "" {
		activity.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := h.store.CreateActivity(ctx, &activity); err != nil {
		h.logger.ErrorContext(ctx, "failed to create activity", slog.Any("error", err))
		return failure("failed to create activity")
	}
	return success(activity)
}

func (h *RPCHandler) getChanges(ctx context.Context, req *api.RPCRequest) api.Response {
	var params struct {
		Since int64 `json:"since"` // epoch milliseconds
	}
	if err := decodeParam(req, 0, &params); err != nil {
		return failure(err.Error())
	}

	since := time.UnixMilli(params.Since).UTC().Format(time.RFC3339)
	changes, err := h.store.GetChangesSince(ctx, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get changes", slog.Any("error", err))
		return failure("failed to get changes")
	}

	resp := api.ChangesResponse{
		Leads:        marshalEach(changes.Leads),
		Tasks:        marshalEach(changes.Tasks),
		Activities:   marshalEach(changes.Activities),
		DeletedLeads: changes.DeletedLeads,
		DeletedTasks: changes.DeletedTasks,
	}
	return success(resp)
}

func (h *RPCHandler) getAllData(ctx context.Context) api.Response {
	// since the beginning of time, which is everything
	changes, err := h.store.GetChangesSince(ctx, "")
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get data", slog.Any("error", err))
		return failure("failed to get data")
	}

	data := struct {
		Leads      []models.Lead     `json:"leads"`
		Tasks      []models.Task     `json:"tasks"`
		Activities []models.Activity `json:"activities"`
	}{
		Leads:      changes.Leads,
		Tasks:      changes.Tasks,
		Activities: changes.Activities,
	}
	if data.Leads == nil {
		data.Leads = []models.Lead{}
	}
	if data.Tasks == nil {
		data.Tasks = []models.Task{}
	}
	if data.Activities == nil {
		data.Activities = []models.Activity{}
	}
	return success(data)
}

func (h *RPCHandler) writeResponse(w http.ResponseWriter, resp api.Response, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode rpc response", slog.Any("error", err))
	}
}

func decodeParam(req *api.RPCRequest, i int, v any) error {
	if i >= len(req.Parameters) {
		return fmt.Errorf("missing parameter %d", i)
	}
	if err := json.Unmarshal(req.Parameters[i], v); err != nil {
		return fmt.Errorf("invalid parameter %d: %v", i, err)
	}
	return nil
}

func success(data any) api.Response {
	raw, err := json.Marshal(data)
	if err != nil {
		return failure("failed to encode response data")
	}
	return api.Response{Success: true, Data: raw}
}

func failure(message string) api.Response {
	return api.Response{Success: false, Error: message}
}

// marshalEach encodes every item individually so the change feed can mix
// entity types without committing the envelope to a single schema
func marshalEach[T any](items []T) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// conflict reports a concurrent modification: the envelope is successful
// at the transport level but carries both versions instead of data
func conflict(server, local any) api.Response {
	serverRaw, err := json.Marshal(server)
	if err != nil {
		return failure("failed to encode server version")
	}
	localRaw, err := json.Marshal(local)
	if err != nil {
		return failure("failed to encode local version")
	}
	return api.Response{
		Success:  true,
		Conflict: &api.ConflictPayload{Server: serverRaw, Local: localRaw},
	}
}
