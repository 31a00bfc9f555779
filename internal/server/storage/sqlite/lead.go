package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/server/storage"
)

const leadColumns = `id, name, phone, email, location, interest, source, status,
	assigned_to, temperature, lost_reason, notes, follow_up_date, value,
	created_at, updated_at`

// SaveLead inserts or updates a lead
func (s *Storage) SaveLead(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			email = excluded.email,
			location = excluded.location,
			interest = excluded.interest,
			source = excluded.source,
			status = excluded.status,
			assigned_to = excluded.assigned_to,
			temperature = excluded.temperature,
			lost_reason = excluded.lost_reason,
			notes = excluded.notes,
			follow_up_date = excluded.follow_up_date,
			value = excluded.value,
			updated_at = excluded.updated_at,
			deleted = 0
	`

	_, err := s.db.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Phone, lead.Email, lead.Location,
		lead.Interest, lead.Source, lead.Status, lead.AssignedTo,
		lead.Temperature, lead.LostReason, lead.Notes, lead.FollowUpDate,
		lead.Value, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	return nil
}

// GetLead retrieves a lead by id
// Returns ErrLeadNotFound if the lead doesn't exist or is deleted
func (s *Storage) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ? AND deleted = 0`

	lead := &models.Lead{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Location,
		&lead.Interest, &lead.Source, &lead.Status, &lead.AssignedTo,
		&lead.Temperature, &lead.LostReason, &lead.Notes, &lead.FollowUpDate,
		&lead.Value, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// GetAllLeads retrieves all non-deleted leads, newest first
func (s *Storage) GetAllLeads(ctx context.Context) ([]models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE deleted = 0 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// DeleteLead marks a lead as deleted (soft delete)
// Returns ErrLeadNotFound if the lead doesn't exist
func (s *Storage) DeleteLead(ctx context.Context, id string) error {
	query := `UPDATE leads SET deleted = 1, updated_at = ? WHERE id = ? AND deleted = 0`

	result, err := s.db.ExecContext(ctx, query, nowRFC3339(), id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrLeadNotFound
	}

	return nil
}

// GetChangesSince retrieves everything modified after the given RFC3339
// timestamp. Lexicographic comparison works because all timestamps are
// RFC3339 in UTC.
func (s *Storage) GetChangesSince(ctx context.Context, since string) (*storage.Changes, error) {
	changes := &storage.Changes{}

	leadRows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumns+`, deleted FROM leads WHERE updated_at > ?`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query changed leads: %w", err)
	}
	defer leadRows.Close()

	for leadRows.Next() {
		var lead models.Lead
		var deleted int
		err := leadRows.Scan(
			&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Location,
			&lead.Interest, &lead.Source, &lead.Status, &lead.AssignedTo,
			&lead.Temperature, &lead.LostReason, &lead.Notes, &lead.FollowUpDate,
			&lead.Value, &lead.CreatedAt, &lead.UpdatedAt, &deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		if deleted != 0 {
			changes.DeletedLeads = append(changes.DeletedLeads, lead.ID)
		} else {
			changes.Leads = append(changes.Leads, lead)
		}
	}
	if err := leadRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	taskRows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+`, deleted FROM tasks WHERE updated_at > ?`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query changed tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var task models.Task
		var deleted int
		err := taskRows.Scan(
			&task.ID, &task.LeadID, &task.Title, &task.Note, &task.DueDate,
			&task.Status, &task.Priority, &task.AssignedTo, &task.CreatedBy,
			&task.CreatedAt, &task.UpdatedAt, &task.CompletedAt, &deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if deleted != 0 {
			changes.DeletedTasks = append(changes.DeletedTasks, task.ID)
		} else {
			changes.Tasks = append(changes.Tasks, task)
		}
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	activityRows, err := s.db.QueryContext(ctx,
		`SELECT id, lead_id, type, note, created_by, timestamp
		 FROM activities WHERE timestamp > ?`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query changed activities: %w", err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		var activity models.Activity
		err := activityRows.Scan(
			&activity.ID, &activity.LeadID, &activity.Type,
			&activity.Note, &activity.CreatedBy, &activity.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		changes.Activities = append(changes.Activities, activity)
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return changes, nil
}

func scanLeads(rows *sql.Rows) ([]models.Lead, error) {
	var leadList []models.Lead

	for rows.Next() {
		var lead models.Lead
		err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Location,
			&lead.Interest, &lead.Source, &lead.Status, &lead.AssignedTo,
			&lead.Temperature, &lead.LostReason, &lead.Notes, &lead.FollowUpDate,
			&lead.Value, &lead.CreatedAt, &lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leadList = append(leadList, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leadList, nil
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
