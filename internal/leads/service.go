// Package leads implements the offline-first lead service. Reads go
// through the TTL cache and fall back to queued backend fetches; writes
// are applied to the cache optimistically and recorded in the sync
// ledger for replay. Reconnecting triggers a sync pass automatically.
package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/leadsync/internal/cache"
	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/netmon"
	"github.com/iudanet/leadsync/internal/queue"
	"github.com/iudanet/leadsync/internal/syncer"
	"github.com/iudanet/leadsync/internal/validation"
)

const (
	keyAllLeads = "leads:all"

	tagLeads      = "leads"
	tagLists      = "lists"
	tagTasks      = "tasks"
	tagActivities = "activities"

	// read fetches rank below user-triggered sync work in the queue
	readPriority  = 5
	fetchRetries  = 3
	fetchCacheTTL = 0 // use the cache default
)

//go:generate moq -out service_mock.go . Service

// Service is the lead management surface the CLI talks to
type Service interface {
	ListLeads(ctx context.Context) ([]models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	ListTasks(ctx context.Context, leadID string) ([]models.Task, error)
	CreateTask(ctx context.Context, leadID string, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, leadID string, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, leadID, taskID string) error

	ListActivities(ctx context.Context, leadID string) ([]models.Activity, error)
	AddActivity(ctx context.Context, leadID string, activity *models.Activity) (*models.Activity, error)

	// Refresh fetches the full dataset and repopulates the cache
	Refresh(ctx context.Context) error

	// Close unsubscribes from connectivity notifications
	Close()
}

type service struct {
	apiClient   httpClient.ClientAPI
	cache       *cache.Cache
	queue       *queue.Queue
	monitor     *netmon.Monitor
	syncer      syncer.Service
	logger      *slog.Logger
	unsubscribe func()
}

// NewService wires the lead service to its collaborators and subscribes
// to connectivity changes: regaining the network kicks off a sync pass
// for whatever accumulated while offline.
func NewService(apiClient httpClient.ClientAPI, c *cache.Cache, q *queue.Queue, monitor *netmon.Monitor, sync syncer.Service, logger *slog.Logger) Service {
	s := &service{
		apiClient: apiClient,
		cache:     c,
		queue:     q,
		monitor:   monitor,
		syncer:    sync,
		logger:    logger,
	}

	if monitor != nil {
		s.unsubscribe = monitor.OnStatusChange(func(online bool) {
			if !online {
				return
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()
				if _, err := sync.SyncPendingOperations(ctx); err != nil {
					logger.Warn("automatic sync after reconnect failed", "error", err)
				}
			}()
		})
	}

	return s
}

// Close unsubscribes from connectivity notifications
func (s *service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// ListLeads returns all leads, served from cache when fresh
func (s *service) ListLeads(ctx context.Context) ([]models.Lead, error) {
	if data, ok := s.cache.Get(keyAllLeads); ok {
		var leads []models.Lead
		if err := decodeCached(data, &leads); err == nil {
			return leads, nil
		}
	}

	var leads []models.Lead
	if err := s.fetch(ctx, "getAllLeads", &leads); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, keyAllLeads, leads, fetchCacheTTL, tagLeads, tagLists)
	return leads, nil
}

// GetLead returns one lead by id, served from cache when fresh
func (s *service) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	key := leadKey(id)
	if data, ok := s.cache.Get(key); ok {
		var lead models.Lead
		if err := decodeCached(data, &lead); err == nil {
			return &lead, nil
		}
	}

	var lead models.Lead
	if err := s.fetch(ctx, "getLead", &lead, id); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, lead, fetchCacheTTL, tagLeads, id)
	return &lead, nil
}

// CreateLead records the new lead in the ledger and caches it
// optimistically. The backend sees it on the next sync pass.
func (s *service) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := validation.ValidateLead(lead); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}

	if _, err := s.syncer.QueueLeadOperation(ctx, models.OpCreate, lead); err != nil {
		return nil, fmt.Errorf("failed to queue lead creation: %w", err)
	}

	s.cache.Set(ctx, leadKey(lead.ID), *lead, fetchCacheTTL, tagLeads, lead.ID)
	s.cache.InvalidateByTag(ctx, tagLists)

	s.logger.Info("lead created", "id", lead.ID, "name", lead.Name)
	return lead, nil
}

// UpdateLead records the change in the ledger and refreshes the cache
func (s *service) UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if lead.ID == "" {
		return nil, fmt.Errorf("lead id is required")
	}
	if err := validation.ValidateLead(lead); err != nil {
		return nil, err
	}

	lead.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if _, err := s.syncer.QueueLeadOperation(ctx, models.OpUpdate, lead); err != nil {
		return nil, fmt.Errorf("failed to queue lead update: %w", err)
	}

	s.cache.Set(ctx, leadKey(lead.ID), *lead, fetchCacheTTL, tagLeads, lead.ID)
	s.cache.InvalidateByTag(ctx, tagLists)

	return lead, nil
}

// DeleteLead records the deletion and drops the lead from the cache
func (s *service) DeleteLead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("lead id is required")
	}

	if _, err := s.syncer.QueueLeadOperation(ctx, models.OpDelete, &models.Lead{ID: id}); err != nil {
		return fmt.Errorf("failed to queue lead deletion: %w", err)
	}

	s.cache.InvalidateByTag(ctx, id)
	s.cache.InvalidateByTag(ctx, tagLists)

	s.logger.Info("lead deleted", "id", id)
	return nil
}

// ListTasks returns the follow-up tasks of a lead
func (s *service) ListTasks(ctx context.Context, leadID string) ([]models.Task, error) {
	key := "tasks:" + leadID
	if data, ok := s.cache.Get(key); ok {
		var tasks []models.Task
		if err := decodeCached(data, &tasks); err == nil {
			return tasks, nil
		}
	}

	var tasks []models.Task
	if err := s.fetch(ctx, "getTasks", &tasks, leadID); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, tasks, fetchCacheTTL, tagTasks, leadID)
	return tasks, nil
}

// CreateTask records a new task for the lead
func (s *service) CreateTask(ctx context.Context, leadID string, task *models.Task) (*models.Task, error) {
	if task.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	if _, err := s.syncer.QueueTaskOperation(ctx, models.OpCreate, task, leadID); err != nil {
		return nil, fmt.Errorf("failed to queue task creation: %w", err)
	}

	s.cache.InvalidateByTag(ctx, tagTasks)
	s.cache.InvalidateByTag(ctx, leadID)

	return task, nil
}

// UpdateTask records a task change
func (s *service) UpdateTask(ctx context.Context, leadID string, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		return nil, fmt.Errorf("task id is required")
	}

	task.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if task.Status == models.TaskStatusCompleted && task.CompletedAt == "" {
		task.CompletedAt = task.UpdatedAt
	}

	if _, err := s.syncer.QueueTaskOperation(ctx, models.OpUpdate, task, leadID); err != nil {
		return nil, fmt.Errorf("failed to queue task update: %w", err)
	}

	s.cache.InvalidateByTag(ctx, tagTasks)
	s.cache.InvalidateByTag(ctx, leadID)

	return task, nil
}

// DeleteTask records a task deletion
func (s *service) DeleteTask(ctx context.Context, leadID, taskID string) error {
	if taskID == "" {
		return fmt.Errorf("task id is required")
	}

	if _, err := s.syncer.QueueTaskOperation(ctx, models.OpDelete, &models.Task{ID: taskID}, leadID); err != nil {
		return fmt.Errorf("failed to queue task deletion: %w", err)
	}

	s.cache.InvalidateByTag(ctx, tagTasks)
	s.cache.InvalidateByTag(ctx, leadID)

	return nil
}

// ListActivities returns the activity feed of a lead
func (s *service) ListActivities(ctx context.Context, leadID string) ([]models.Activity, error) {
	key := "activities:" + leadID
	if data, ok := s.cache.Get(key); ok {
		var activities []models.Activity
		if err := decodeCached(data, &activities); err == nil {
			return activities, nil
		}
	}

	var activities []models.Activity
	if err := s.fetch(ctx, "getActivities", &activities, leadID); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, activities, fetchCacheTTL, tagActivities, leadID)
	return activities, nil
}

// AddActivity appends an entry to a lead's activity feed
func (s *service) AddActivity(ctx context.Context, leadID string, activity *models.Activity) (*models.Activity, error) {
	if activity.Type == "" {
		return nil, fmt.Errorf("activity type is required")
	}

	if activity.Timestamp == "" {
		activity.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if _, err := s.syncer.QueueActivityOperation(ctx, models.OpCreate, activity, leadID); err != nil {
		return nil, fmt.Errorf("failed to queue activity: %w", err)
	}

	s.cache.InvalidateByTag(ctx, tagActivities)
	s.cache.InvalidateByTag(ctx, leadID)

	return activity, nil
}

// Refresh fetches the full dataset and repopulates the cache
func (s *service) Refresh(ctx context.Context) error {
	data, err := s.syncer.FullSync(ctx)
	if err != nil {
		return err
	}

	s.cache.Set(ctx, keyAllLeads, data.Leads, fetchCacheTTL, tagLeads, tagLists)
	for i := range data.Leads {
		lead := data.Leads[i]
		s.cache.Set(ctx, leadKey(lead.ID), lead, fetchCacheTTL, tagLeads, lead.ID)
	}

	tasksByLead := make(map[string][]models.Task)
	for _, task := range data.Tasks {
		tasksByLead[task.LeadID] = append(tasksByLead[task.LeadID], task)
	}
	for leadID, tasks := range tasksByLead {
		s.cache.Set(ctx, "tasks:"+leadID, tasks, fetchCacheTTL, tagTasks, leadID)
	}

	activitiesByLead := make(map[string][]models.Activity)
	for _, activity := range data.Activities {
		activitiesByLead[activity.LeadID] = append(activitiesByLead[activity.LeadID], activity)
	}
	for leadID, activities := range activitiesByLead {
		s.cache.Set(ctx, "activities:"+leadID, activities, fetchCacheTTL, tagActivities, leadID)
	}

	s.logger.Info("cache refreshed from full sync",
		"leads", len(data.Leads),
		"tasks", len(data.Tasks),
		"activities", len(data.Activities))
	return nil
}

// fetch runs a backend read through the request queue so reads share the
// concurrency ceiling and retry policy with everything else in flight
func (s *service) fetch(ctx context.Context, function string, out any, parameters ...any) error {
	if s.monitor != nil && s.monitor.IsOffline() {
		return fmt.Errorf("%s unavailable offline and not cached", function)
	}

	future, err := s.queue.Enqueue(ctx, func(ctx context.Context) (any, error) {
		resp, err := s.apiClient.Execute(ctx, function, parameters...)
		if err != nil {
			return nil, err
		}
		if !resp.Success {
			return nil, fmt.Errorf("%s failed: %s", function, resp.Error)
		}
		return resp.Data, nil
	}, readPriority, fetchRetries)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", function, err)
	}

	value, err := future.Wait(ctx)
	if err != nil {
		return err
	}

	raw, ok := value.(json.RawMessage)
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", function, err)
	}
	return nil
}

func leadKey(id string) string {
	return "leads:" + id
}

// decodeCached converts a cached value back to its typed form. Values
// restored from a persisted snapshot come back as generic JSON, so this
// round-trips through encoding instead of type-asserting.
func decodeCached(data, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
