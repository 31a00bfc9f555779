package leads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/leadsync/internal/cache"
	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/netmon"
	"github.com/iudanet/leadsync/internal/queue"
	"github.com/iudanet/leadsync/internal/retry"
	"github.com/iudanet/leadsync/internal/syncer"
	"github.com/iudanet/leadsync/pkg/api"
)

type stubProber struct {
	reachable bool
}

func (p *stubProber) Probe(ctx context.Context) error {
	if !p.reachable {
		return errors.New("connection refused")
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	api     *httpClient.ClientAPIMock
	cache   *cache.Cache
	queue   *queue.Queue
	monitor *netmon.Monitor
	service Service
}

func newFixture(t *testing.T, apiMock *httpClient.ClientAPIMock, syncMock *syncer.ServiceMock, online bool) *fixture {
	t.Helper()

	ctx := context.Background()
	logger := testLogger()

	cacheCfg := cache.DefaultConfig()
	cacheCfg.PersistToStorage = false
	c := cache.New(ctx, cacheCfg, nil, logger)

	queueCfg := queue.DefaultConfig()
	queueCfg.PersistToStorage = false
	queueCfg.RetryStrategy = retry.StrategyImmediate
	q := queue.New(ctx, queueCfg, nil, logger)

	monitor := netmon.New(netmon.DefaultConfig(), &stubProber{reachable: online}, logger, online)

	svc := NewService(apiMock, c, q, monitor, syncMock, logger)
	t.Cleanup(svc.Close)

	return &fixture{
		api:     apiMock,
		cache:   c,
		queue:   q,
		monitor: monitor,
		service: svc,
	}
}

func dataResponse(t *testing.T, v any) *api.Response {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return &api.Response{Success: true, Data: raw}
}

func TestListLeadsFetchesAndCaches(t *testing.T) {
	leads := []models.Lead{{ID: "lead-1", Name: "Acme"}, {ID: "lead-2", Name: "Globex"}}

	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			require.Equal(t, "getAllLeads", function)
			return dataResponse(t, leads), nil
		},
	}
	f := newFixture(t, apiMock, &syncer.ServiceMock{}, true)
	ctx := context.Background()

	got, err := f.service.ListLeads(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// second read is served from cache
	got, err = f.service.ListLeads(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, f.api.ExecuteCalls(), 1)
}

func TestGetLeadCacheHitAvoidsBackend(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{}
	f := newFixture(t, apiMock, &syncer.ServiceMock{}, true)
	ctx := context.Background()

	f.cache.Set(ctx, "leads:lead-1", models.Lead{ID: "lead-1", Name: "Cached"}, 0)

	lead, err := f.service.GetLead(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, "Cached", lead.Name)
	assert.Empty(t, f.api.ExecuteCalls())
}

func TestGetLeadOfflineWithoutCache(t *testing.T) {
	f := newFixture(t, &httpClient.ClientAPIMock{}, &syncer.ServiceMock{}, false)

	_, err := f.service.GetLead(context.Background(), "lead-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestCreateLeadQueuesAndCaches(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueLeadOperationFunc: func(ctx context.Context, kind models.OperationKind, lead *models.Lead) (*models.SyncOperation, error) {
			lead.ID = "lead-new"
			return &models.SyncOperation{ID: "op-1", Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)
	ctx := context.Background()

	// a stale list is invalidated by the create
	f.cache.Set(ctx, "leads:all", []models.Lead{}, 0, "leads", "lists")

	lead, err := f.service.CreateLead(ctx, &models.Lead{Name: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "lead-new", lead.ID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.CreatedAt)
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)

	calls := syncMock.QueueLeadOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpCreate, calls[0].Kind)

	// created lead is readable offline, the list is not
	assert.True(t, f.cache.Has("leads:lead-new"))
	assert.False(t, f.cache.Has("leads:all"))
}

func TestCreateLeadValidation(t *testing.T) {
	f := newFixture(t, &httpClient.ClientAPIMock{}, &syncer.ServiceMock{}, true)

	_, err := f.service.CreateLead(context.Background(), &models.Lead{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestUpdateLeadStampsAndInvalidates(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueLeadOperationFunc: func(ctx context.Context, kind models.OperationKind, lead *models.Lead) (*models.SyncOperation, error) {
			return &models.SyncOperation{Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)
	ctx := context.Background()

	f.cache.Set(ctx, "leads:all", []models.Lead{}, 0, "lists")

	lead := &models.Lead{ID: "lead-1", Name: "Acme", Status: models.LeadStatusContacted}
	_, err := f.service.UpdateLead(ctx, lead)
	require.NoError(t, err)

	assert.NotEmpty(t, lead.UpdatedAt)
	assert.False(t, f.cache.Has("leads:all"))

	calls := syncMock.QueueLeadOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpUpdate, calls[0].Kind)
}

func TestUpdateLeadRequiresID(t *testing.T) {
	f := newFixture(t, &httpClient.ClientAPIMock{}, &syncer.ServiceMock{}, true)

	_, err := f.service.UpdateLead(context.Background(), &models.Lead{Name: "Acme"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

func TestDeleteLeadDropsCachedEntry(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueLeadOperationFunc: func(ctx context.Context, kind models.OperationKind, lead *models.Lead) (*models.SyncOperation, error) {
			return &models.SyncOperation{Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)
	ctx := context.Background()

	f.cache.Set(ctx, "leads:lead-1", models.Lead{ID: "lead-1"}, 0, "leads", "lead-1")

	require.NoError(t, f.service.DeleteLead(ctx, "lead-1"))
	assert.False(t, f.cache.Has("leads:lead-1"))

	calls := syncMock.QueueLeadOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpDelete, calls[0].Kind)
	assert.Equal(t, "lead-1", calls[0].Lead.ID)
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueTaskOperationFunc: func(ctx context.Context, kind models.OperationKind, task *models.Task, leadID string) (*models.SyncOperation, error) {
			return &models.SyncOperation{Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)

	task, err := f.service.CreateTask(context.Background(), "lead-1", &models.Task{Title: "Call back"})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.NotEmpty(t, task.CreatedAt)

	calls := syncMock.QueueTaskOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "lead-1", calls[0].LeadID)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	f := newFixture(t, &httpClient.ClientAPIMock{}, &syncer.ServiceMock{}, true)

	_, err := f.service.CreateTask(context.Background(), "lead-1", &models.Task{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestUpdateTaskCompletionTimestamp(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueTaskOperationFunc: func(ctx context.Context, kind models.OperationKind, task *models.Task, leadID string) (*models.SyncOperation, error) {
			return &models.SyncOperation{Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)

	task := &models.Task{ID: "task-1", Title: "Call back", Status: models.TaskStatusCompleted}
	_, err := f.service.UpdateTask(context.Background(), "lead-1", task)
	require.NoError(t, err)

	assert.NotEmpty(t, task.CompletedAt)
	assert.Equal(t, task.UpdatedAt, task.CompletedAt)
}

func TestAddActivityStampsTimestamp(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		QueueActivityOperationFunc: func(ctx context.Context, kind models.OperationKind, activity *models.Activity, leadID string) (*models.SyncOperation, error) {
			return &models.SyncOperation{Kind: kind}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)

	activity := &models.Activity{Type: models.ActivityNote, Note: "left voicemail"}
	_, err := f.service.AddActivity(context.Background(), "lead-1", activity)
	require.NoError(t, err)

	assert.NotEmpty(t, activity.Timestamp)
}

func TestListTasksFetchesPerLead(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ExecuteFunc: func(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
			require.Equal(t, "getTasks", function)
			return dataResponse(t, []models.Task{{ID: "task-1", LeadID: "lead-1", Title: "Call"}}), nil
		},
	}
	f := newFixture(t, apiMock, &syncer.ServiceMock{}, true)

	tasks, err := f.service.ListTasks(context.Background(), "lead-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call", tasks[0].Title)
}

func TestRefreshRepopulatesCache(t *testing.T) {
	syncMock := &syncer.ServiceMock{
		FullSyncFunc: func(ctx context.Context) (*syncer.FullData, error) {
			return &syncer.FullData{
				Leads: []models.Lead{{ID: "lead-1", Name: "Acme"}},
				Tasks: []models.Task{{ID: "task-1", LeadID: "lead-1", Title: "Call"}},
				Activities: []models.Activity{
					{ID: "act-1", LeadID: "lead-1", Type: models.ActivityNote},
				},
			}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, true)
	ctx := context.Background()

	require.NoError(t, f.service.Refresh(ctx))

	assert.True(t, f.cache.Has("leads:all"))
	assert.True(t, f.cache.Has("leads:lead-1"))
	assert.True(t, f.cache.Has("tasks:lead-1"))
	assert.True(t, f.cache.Has("activities:lead-1"))

	// the cached data is readable without touching the backend
	leads, err := f.service.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Acme", leads[0].Name)
}

func TestReconnectTriggersSyncPass(t *testing.T) {
	synced := make(chan struct{}, 1)
	syncMock := &syncer.ServiceMock{
		SyncPendingOperationsFunc: func(ctx context.Context) (*syncer.SyncResult, error) {
			select {
			case synced <- struct{}{}:
			default:
			}
			return &syncer.SyncResult{}, nil
		},
	}
	f := newFixture(t, &httpClient.ClientAPIMock{}, syncMock, false)

	// the service starts offline; a successful probe flips the monitor and
	// the subscription kicks off a sync pass in the background
	m := netmon.New(netmon.DefaultConfig(), &stubProber{reachable: true}, testLogger(), false)
	svc := NewService(&httpClient.ClientAPIMock{}, f.cache, f.queue, m, syncMock, testLogger())
	defer svc.Close()

	m.CheckNow(context.Background())

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sync pass after reconnect")
	}
}
