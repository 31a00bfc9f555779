package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/server/storage"
)

const taskColumns = `id, lead_id, title, note, due_date, status, priority,
	assigned_to, created_by, created_at, updated_at, completed_at`

// SaveTask inserts or updates a task
func (s *Storage) SaveTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(id) DO UPDATE SET
			lead_id = excluded.lead_id,
			title = excluded.title,
			note = excluded.note,
			due_date = excluded.due_date,
			status = excluded.status,
			priority = excluded.priority,
			assigned_to = excluded.assigned_to,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at,
			deleted = 0
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.LeadID, task.Title, task.Note, task.DueDate,
		task.Status, task.Priority, task.AssignedTo, task.CreatedBy,
		task.CreatedAt, task.UpdatedAt, task.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by id
// Returns ErrTaskNotFound if the task doesn't exist or is deleted
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND deleted = 0`

	task := &models.Task{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.LeadID, &task.Title, &task.Note, &task.DueDate,
		&task.Status, &task.Priority, &task.AssignedTo, &task.CreatedBy,
		&task.CreatedAt, &task.UpdatedAt, &task.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// GetTasksByLead retrieves all non-deleted tasks of a lead
func (s *Storage) GetTasksByLead(ctx context.Context, leadID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE lead_id = ? AND deleted = 0 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID, &task.LeadID, &task.Title, &task.Note, &task.DueDate,
			&task.Status, &task.Priority, &task.AssignedTo, &task.CreatedBy,
			&task.CreatedAt, &task.UpdatedAt, &task.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// DeleteTask marks a task as deleted (soft delete)
// Returns ErrTaskNotFound if the task doesn't exist
func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	query := `UPDATE tasks SET deleted = 1, updated_at = ? WHERE id = ? AND deleted = 0`

	result, err := s.db.ExecContext(ctx, query, nowRFC3339(), id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// CreateActivity appends an activity feed entry
func (s *Storage) CreateActivity(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (id, lead_id, type, note, created_by, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		activity.ID, activity.LeadID, activity.Type,
		activity.Note, activity.CreatedBy, activity.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// GetActivitiesByLead retrieves the activity feed of a lead, newest first
func (s *Storage) GetActivitiesByLead(ctx context.Context, leadID string) ([]models.Activity, error) {
	query := `SELECT id, lead_id, type, note, created_by, timestamp
		FROM activities WHERE lead_id = ? ORDER BY timestamp DESC`

	rows, err := s.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID, &activity.LeadID, &activity.Type,
			&activity.Note, &activity.CreatedBy, &activity.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}
