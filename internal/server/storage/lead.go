package storage

import (
	"context"

	"github.com/iudanet/leadsync/internal/models"
)

// Changes describes everything modified after a given point in time.
// Deletions are reported as ids because the rows are soft-deleted.
type Changes struct {
	Leads        []models.Lead
	Tasks        []models.Task
	Activities   []models.Activity
	DeletedLeads []string
	DeletedTasks []string
}

// LeadStorage defines the interface for lead data persistence
type LeadStorage interface {
	// SaveLead inserts or updates a lead
	SaveLead(ctx context.Context, lead *models.Lead) error

	// GetLead retrieves a lead by id
	// Returns ErrLeadNotFound if the lead doesn't exist or is deleted
	GetLead(ctx context.Context, id string) (*models.Lead, error)

	// GetAllLeads retrieves all non-deleted leads, newest first
	GetAllLeads(ctx context.Context) ([]models.Lead, error)

	// DeleteLead marks a lead as deleted (soft delete)
	// Returns ErrLeadNotFound if the lead doesn't exist
	DeleteLead(ctx context.Context, id string) error

	// SaveTask inserts or updates a task
	SaveTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a task by id
	// Returns ErrTaskNotFound if the task doesn't exist or is deleted
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// GetTasksByLead retrieves all non-deleted tasks of a lead
	GetTasksByLead(ctx context.Context, leadID string) ([]models.Task, error)

	// DeleteTask marks a task as deleted (soft delete)
	// Returns ErrTaskNotFound if the task doesn't exist
	DeleteTask(ctx context.Context, id string) error

	// CreateActivity appends an activity feed entry
	CreateActivity(ctx context.Context, activity *models.Activity) error

	// GetActivitiesByLead retrieves the activity feed of a lead, newest first
	GetActivitiesByLead(ctx context.Context, leadID string) ([]models.Activity, error)

	// GetChangesSince retrieves everything modified after the given
	// RFC3339 timestamp. Used for incremental sync.
	GetChangesSince(ctx context.Context, since string) (*Changes, error)
}
