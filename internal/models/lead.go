package models

// LeadStatus is the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusProposal  LeadStatus = "Proposal"
	LeadStatusWon       LeadStatus = "Won"
	LeadStatusLost      LeadStatus = "Lost"
)

// TaskStatus tracks the lifecycle of a follow-up task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusDropped   TaskStatus = "dropped"
)

// ActivityType classifies entries of a lead's activity feed
type ActivityType string

const (
	ActivityLeadCreated  ActivityType = "lead_created"
	ActivityStatusChange ActivityType = "status_change"
	ActivityAssignment   ActivityType = "assignment"
	ActivityTask         ActivityType = "task"
	ActivityFollowUp     ActivityType = "follow_up"
	ActivityNote         ActivityType = "note"
	ActivityCall         ActivityType = "call"
)

// Lead is the core entity: a sales lead with contact details, pipeline
// state and assignment. Timestamps are RFC3339 strings because the backend
// stores them as spreadsheet cells.
type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Location     string     `json:"location,omitempty"`
	Interest     string     `json:"interest,omitempty"`
	Source       string     `json:"source,omitempty"`
	Status       LeadStatus `json:"status"`
	AssignedTo   string     `json:"assignedTo,omitempty"`
	Temperature  string     `json:"temperature,omitempty"`
	LostReason   string     `json:"lostReason,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	FollowUpDate string     `json:"followUpDate,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
	Value        float64    `json:"value,omitempty"`
}

// Task is a follow-up item attached to a lead
type Task struct {
	ID          string     `json:"id"`
	LeadID      string     `json:"leadId"`
	Title       string     `json:"title"`
	Note        string     `json:"note,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
	CompletedAt string     `json:"completedAt,omitempty"`
}

// Activity is one entry in a lead's activity feed. Activities are
// append-only: they are created but never updated.
type Activity struct {
	ID        string       `json:"id"`
	LeadID    string       `json:"leadId"`
	Type      ActivityType `json:"type"`
	Note      string       `json:"note"`
	CreatedBy string       `json:"createdBy"`
	Timestamp string       `json:"timestamp"`
}
