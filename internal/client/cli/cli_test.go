package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/client/auth"
	"github.com/iudanet/leadsync/internal/client/iocli"
	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/leads"
	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/netmon"
	"github.com/iudanet/leadsync/internal/syncer"
	"github.com/iudanet/leadsync/pkg/api"
)

// newTestIO returns an IO mock that collects everything printed so tests
// can assert on the rendered output
func newTestIO() (*iocli.IOMock, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	ioMock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) { fmt.Fprintln(buf, a...) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(buf, format, a...) },
		WriteFunc:   func(p []byte) (int, error) { return buf.Write(p) },
	}
	return ioMock, buf
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProber struct {
	err error
}

func (p *stubProber) Probe(ctx context.Context) error { return p.err }

func onlineMonitor() *netmon.Monitor {
	return netmon.New(netmon.DefaultConfig(), &stubProber{}, testLogger(), true)
}

func offlineMonitor() *netmon.Monitor {
	return netmon.New(netmon.DefaultConfig(), &stubProber{err: errors.New("unreachable")}, testLogger(), false)
}

func signTestToken(t *testing.T, username string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":      "user-123",
		"username": username,
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

func sampleLead(id, name string) models.Lead {
	return models.Lead{
		ID:        id,
		Name:      name,
		Phone:     "+495551234567",
		Status:    models.LeadStatusNew,
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}
}

func TestRunUnknownCommand(t *testing.T) {
	ioMock, _ := newTestIO()
	c := New(ioMock, nil, nil, nil, nil)

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: frobnicate")
}

func TestList(t *testing.T) {
	ioMock, buf := newTestIO()
	leadsMock := &leads.ServiceMock{
		ListLeadsFunc: func(ctx context.Context) ([]models.Lead, error) {
			return []models.Lead{
				sampleLead("lead-1", "Acme Corp"),
				sampleLead("lead-2", "Globex"),
			}, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "list", nil))

	out := buf.String()
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "2 lead(s)")
}

func TestListEmpty(t *testing.T) {
	ioMock, buf := newTestIO()
	leadsMock := &leads.ServiceMock{
		ListLeadsFunc: func(ctx context.Context) ([]models.Lead, error) {
			return nil, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "list", nil))
	assert.Contains(t, buf.String(), "No leads found.")
}

func TestListError(t *testing.T) {
	ioMock, _ := newTestIO()
	leadsMock := &leads.ServiceMock{
		ListLeadsFunc: func(ctx context.Context) ([]models.Lead, error) {
			return nil, errors.New("offline and nothing cached")
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	err := c.Run(context.Background(), "list", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list leads")
}

func TestGet(t *testing.T) {
	ioMock, buf := newTestIO()
	lead := sampleLead("lead-1", "Acme Corp")
	lead.Notes = "prefers email"

	leadsMock := &leads.ServiceMock{
		GetLeadFunc: func(ctx context.Context, id string) (*models.Lead, error) {
			assert.Equal(t, "lead-1", id)
			return &lead, nil
		},
		ListTasksFunc: func(ctx context.Context, leadID string) ([]models.Task, error) {
			return []models.Task{
				{ID: "task-1", Title: "Call back", Status: models.TaskStatusCompleted},
				{ID: "task-2", Title: "Send proposal", Status: models.TaskStatusPending},
			}, nil
		},
		ListActivitiesFunc: func(ctx context.Context, leadID string) ([]models.Activity, error) {
			return []models.Activity{
				{ID: "act-1", Type: models.ActivityNote, Note: "left voicemail", Timestamp: "2026-01-02T10:00:00Z"},
			}, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "get", []string{"lead-1"}))

	out := buf.String()
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "prefers email")
	assert.Contains(t, out, "[x] Call back (task-1)")
	assert.Contains(t, out, "[ ] Send proposal (task-2)")
	assert.Contains(t, out, "left voicemail")
}

func TestGetMissingArgument(t *testing.T) {
	ioMock, _ := newTestIO()
	c := New(ioMock, nil, &leads.ServiceMock{}, nil, nil)

	err := c.Run(context.Background(), "get", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing lead id")
}

func TestAdd(t *testing.T) {
	ioMock, buf := newTestIO()

	answers := []string{"Acme Corp", "+495551234567", "sales@acme.example", "Berlin", "CRM rollout", "referral", "12500"}
	ioMock.ReadInputFunc = func(prompt string) (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}

	leadsMock := &leads.ServiceMock{
		CreateLeadFunc: func(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
			assert.Equal(t, "Acme Corp", lead.Name)
			assert.Equal(t, "+495551234567", lead.Phone)
			assert.Equal(t, "Berlin", lead.Location)
			assert.Equal(t, 12500.0, lead.Value)
			assert.Equal(t, models.LeadStatusNew, lead.Status)

			created := *lead
			created.ID = "lead-new"
			return &created, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "add", nil))

	assert.Contains(t, buf.String(), "Lead created: lead-new")
	assert.Len(t, leadsMock.CreateLeadCalls(), 1)
}

func TestAddEmptyName(t *testing.T) {
	ioMock, _ := newTestIO()
	ioMock.ReadInputFunc = func(prompt string) (string, error) { return "", nil }

	c := New(ioMock, nil, &leads.ServiceMock{}, nil, nil)
	err := c.Run(context.Background(), "add", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestAddInvalidValue(t *testing.T) {
	ioMock, _ := newTestIO()

	answers := []string{"Acme Corp", "", "", "", "", "", "a lot"}
	ioMock.ReadInputFunc = func(prompt string) (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}

	c := New(ioMock, nil, &leads.ServiceMock{}, nil, nil)
	err := c.Run(context.Background(), "add", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestUpdate(t *testing.T) {
	ioMock, buf := newTestIO()
	lead := sampleLead("lead-1", "Acme Corp")

	leadsMock := &leads.ServiceMock{
		GetLeadFunc: func(ctx context.Context, id string) (*models.Lead, error) {
			return &lead, nil
		},
		UpdateLeadFunc: func(ctx context.Context, updated *models.Lead) (*models.Lead, error) {
			assert.Equal(t, models.LeadStatusContacted, updated.Status)
			assert.Equal(t, "anna", updated.AssignedTo)
			return updated, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	err := c.Run(context.Background(), "update", []string{"lead-1", "-status", "Contacted", "-assign", "anna"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Lead lead-1 updated")
	assert.Len(t, leadsMock.UpdateLeadCalls(), 1)
}

func TestUpdateNoFlags(t *testing.T) {
	ioMock, _ := newTestIO()
	lead := sampleLead("lead-1", "Acme Corp")

	leadsMock := &leads.ServiceMock{
		GetLeadFunc: func(ctx context.Context, id string) (*models.Lead, error) {
			return &lead, nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	err := c.Run(context.Background(), "update", []string{"lead-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestDeleteConfirmed(t *testing.T) {
	ioMock, buf := newTestIO()
	ioMock.ReadInputFunc = func(prompt string) (string, error) {
		assert.Contains(t, prompt, "lead-1")
		return "y", nil
	}

	leadsMock := &leads.ServiceMock{
		DeleteLeadFunc: func(ctx context.Context, id string) error {
			assert.Equal(t, "lead-1", id)
			return nil
		},
	}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "delete", []string{"lead-1"}))

	assert.Contains(t, buf.String(), "Lead lead-1 deleted")
	assert.Len(t, leadsMock.DeleteLeadCalls(), 1)
}

func TestDeleteCancelled(t *testing.T) {
	ioMock, buf := newTestIO()
	ioMock.ReadInputFunc = func(prompt string) (string, error) { return "n", nil }

	leadsMock := &leads.ServiceMock{}

	c := New(ioMock, nil, leadsMock, nil, nil)
	require.NoError(t, c.Run(context.Background(), "delete", []string{"lead-1"}))

	assert.Contains(t, buf.String(), "Cancelled.")
	assert.Empty(t, leadsMock.DeleteLeadCalls())
}

func TestSync(t *testing.T) {
	ioMock, buf := newTestIO()

	syncMock := &syncer.ServiceMock{
		StatusFunc: func() syncer.SyncStatus {
			return syncer.SyncStatus{PendingCount: 2}
		},
		SyncPendingOperationsFunc: func(ctx context.Context) (*syncer.SyncResult, error) {
			return &syncer.SyncResult{
				Synced: []*models.SyncOperation{
					{ID: "op-1", Status: models.OpStatusSynced},
					{ID: "op-2", Status: models.OpStatusSynced},
				},
			}, nil
		},
	}

	c := New(ioMock, nil, nil, syncMock, onlineMonitor())
	require.NoError(t, c.Run(context.Background(), "sync", nil))

	out := buf.String()
	assert.Contains(t, out, "Syncing 2 pending operation(s)")
	assert.Contains(t, out, "Synced:    2")
}

func TestSyncOffline(t *testing.T) {
	ioMock, _ := newTestIO()

	c := New(ioMock, nil, nil, &syncer.ServiceMock{}, offlineMonitor())
	err := c.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server unreachable")
}

func TestSyncNothingPending(t *testing.T) {
	ioMock, buf := newTestIO()

	syncMock := &syncer.ServiceMock{
		StatusFunc: func() syncer.SyncStatus { return syncer.SyncStatus{} },
	}

	c := New(ioMock, nil, nil, syncMock, onlineMonitor())
	require.NoError(t, c.Run(context.Background(), "sync", nil))
	assert.Contains(t, buf.String(), "Nothing to sync.")
}

func TestSyncReportsConflictsAndFailures(t *testing.T) {
	ioMock, buf := newTestIO()

	syncMock := &syncer.ServiceMock{
		StatusFunc: func() syncer.SyncStatus {
			return syncer.SyncStatus{PendingCount: 3}
		},
		SyncPendingOperationsFunc: func(ctx context.Context) (*syncer.SyncResult, error) {
			return &syncer.SyncResult{
				Synced: []*models.SyncOperation{{ID: "op-1"}},
				Failed: []*models.SyncOperation{
					{ID: "op-2", LastError: "operation rejected: name cannot be empty"},
				},
				Conflicts: []*models.SyncConflict{
					{Operation: &models.SyncOperation{ID: "op-3"}},
				},
			}, nil
		},
	}

	c := New(ioMock, nil, nil, syncMock, onlineMonitor())
	require.NoError(t, c.Run(context.Background(), "sync", nil))

	out := buf.String()
	assert.Contains(t, out, "Failed:    1")
	assert.Contains(t, out, "operation rejected: name cannot be empty")
	assert.Contains(t, out, "Conflicts: 1")
	assert.Contains(t, out, "leadsync conflicts")
}

func TestConflictsEmpty(t *testing.T) {
	ioMock, buf := newTestIO()

	syncMock := &syncer.ServiceMock{
		ConflictsFunc: func() []*models.SyncConflict { return nil },
	}

	c := New(ioMock, nil, nil, syncMock, nil)
	require.NoError(t, c.Run(context.Background(), "conflicts", nil))
	assert.Contains(t, buf.String(), "No unresolved conflicts.")
}

func TestConflicts(t *testing.T) {
	ioMock, buf := newTestIO()

	syncMock := &syncer.ServiceMock{
		ConflictsFunc: func() []*models.SyncConflict {
			return []*models.SyncConflict{
				{
					Operation: &models.SyncOperation{
						ID:        "op-1",
						Kind:      models.OpUpdate,
						Entity:    models.EntityLead,
						EntityID:  "lead-1",
						CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC).UnixMilli(),
					},
					ServerData: json.RawMessage(`{"name":"Server"}`),
					LocalData:  json.RawMessage(`{"name":"Local"}`),
				},
			}
		},
	}

	c := New(ioMock, nil, nil, syncMock, nil)
	require.NoError(t, c.Run(context.Background(), "conflicts", nil))

	out := buf.String()
	assert.Contains(t, out, "Operation: op-1")
	assert.Contains(t, out, "update lead lead-1")
	assert.Contains(t, out, `server: {"name":"Server"}`)
	assert.Contains(t, out, `local:  {"name":"Local"}`)
}

func TestResolve(t *testing.T) {
	ioMock, buf := newTestIO()

	conflict := &models.SyncConflict{
		Operation: &models.SyncOperation{ID: "op-1"},
	}
	syncMock := &syncer.ServiceMock{
		ConflictsFunc: func() []*models.SyncConflict {
			return []*models.SyncConflict{conflict}
		},
		ResolveConflictFunc: func(ctx context.Context, c *models.SyncConflict, resolution models.Resolution) error {
			assert.Same(t, conflict, c)
			assert.Equal(t, models.ResolutionMerge, resolution)
			return nil
		},
	}

	c := New(ioMock, nil, nil, syncMock, nil)
	require.NoError(t, c.Run(context.Background(), "resolve", []string{"op-1", "merge"}))

	out := buf.String()
	assert.Contains(t, out, "Conflict resolved (merge)")
	assert.Contains(t, out, "retried on the next sync")
	assert.Len(t, syncMock.ResolveConflictCalls(), 1)
}

func TestResolveUnknownStrategy(t *testing.T) {
	ioMock, _ := newTestIO()

	c := New(ioMock, nil, nil, &syncer.ServiceMock{}, nil)
	err := c.Run(context.Background(), "resolve", []string{"op-1", "coinflip"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestResolveUnknownOperation(t *testing.T) {
	ioMock, _ := newTestIO()

	syncMock := &syncer.ServiceMock{
		ConflictsFunc: func() []*models.SyncConflict { return nil },
	}

	c := New(ioMock, nil, nil, syncMock, nil)
	err := c.Run(context.Background(), "resolve", []string{"op-404", "local"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict found for operation op-404")
}

func TestLogin(t *testing.T) {
	ioMock, buf := newTestIO()
	ioMock.ReadInputFunc = func(prompt string) (string, error) { return "manager", nil }
	ioMock.ReadPasswordFunc = func(prompt string) (string, error) { return "secret", nil }

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	issued := signTestToken(t, "manager", expiresAt)

	apiMock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, username, password string) (*api.TokenResponse, error) {
			assert.Equal(t, "manager", username)
			assert.Equal(t, "secret", password)
			return &api.TokenResponse{AccessToken: issued}, nil
		},
	}
	storeMock := &storage.AuthStorageMock{
		SaveTokenFunc: func(ctx context.Context, token string) error { return nil },
	}

	c := New(ioMock, auth.NewService(apiMock, storeMock), nil, nil, nil)
	require.NoError(t, c.Run(context.Background(), "login", nil))

	out := buf.String()
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Username: manager")
}

func TestLogout(t *testing.T) {
	ioMock, buf := newTestIO()

	storeMock := &storage.AuthStorageMock{
		DeleteTokenFunc: func(ctx context.Context) error { return nil },
	}

	c := New(ioMock, auth.NewService(&httpClient.ClientAPIMock{}, storeMock), nil, nil, nil)
	require.NoError(t, c.Run(context.Background(), "logout", nil))
	assert.Contains(t, buf.String(), "Logged out.")
}

func TestStatusNotAuthenticated(t *testing.T) {
	ioMock, buf := newTestIO()

	storeMock := &storage.AuthStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrTokenNotFound
		},
	}
	syncMock := &syncer.ServiceMock{
		StatusFunc: func() syncer.SyncStatus {
			return syncer.SyncStatus{PendingCount: 1, FailedCount: 0}
		},
	}

	c := New(ioMock, auth.NewService(&httpClient.ClientAPIMock{}, storeMock), nil, syncMock, offlineMonitor())
	require.NoError(t, c.Run(context.Background(), "status", nil))

	out := buf.String()
	assert.Contains(t, out, "Session: not authenticated")
	assert.Contains(t, out, "Network: offline")
	assert.Contains(t, out, "Pending operations: 1")
	assert.Contains(t, out, "Last sync:          never")
	assert.Contains(t, out, "Run 'leadsync sync' to push pending changes.")
}

func TestStatusAuthenticatedOnline(t *testing.T) {
	ioMock, buf := newTestIO()

	stored := signTestToken(t, "manager", time.Now().Add(time.Hour))
	storeMock := &storage.AuthStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) { return stored, nil },
	}
	lastSync := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	syncMock := &syncer.ServiceMock{
		StatusFunc: func() syncer.SyncStatus {
			return syncer.SyncStatus{LastSyncTime: lastSync.UnixMilli()}
		},
	}

	c := New(ioMock, auth.NewService(&httpClient.ClientAPIMock{}, storeMock), nil, syncMock, onlineMonitor())
	require.NoError(t, c.Run(context.Background(), "status", nil))

	out := buf.String()
	assert.Contains(t, out, "Session: manager")
	assert.Contains(t, out, "Network: online")
	assert.Contains(t, out, "Pending operations: 0")
	assert.NotContains(t, out, "never")
}
