package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// TaskCategory is a classification label with no behavior attached.
type TaskCategory string

const (
	TaskCategoryDevelopment   TaskCategory = "DEVELOPMENT"
	TaskCategoryTesting       TaskCategory = "TESTING"
	TaskCategoryDocumentation TaskCategory = "DOCUMENTATION"
	TaskCategoryMeeting       TaskCategory = "MEETING"
	TaskCategoryResearch      TaskCategory = "RESEARCH"
	TaskCategoryMaintenance   TaskCategory = "MAINTENANCE"
	TaskCategoryWork          TaskCategory = "WORK"
	TaskCategoryPersonal      TaskCategory = "PERSONAL"
	TaskCategoryOther         TaskCategory = "OTHER"
)

// IsValid checks if the category is one of the allowed values.
// The empty category is valid: category is optional.
func (c TaskCategory) IsValid() bool {
	switch c {
	case "", TaskCategoryDevelopment, TaskCategoryTesting, TaskCategoryDocumentation,
		TaskCategoryMeeting, TaskCategoryResearch, TaskCategoryMaintenance,
		TaskCategoryWork, TaskCategoryPersonal, TaskCategoryOther:
		return true
	default:
		return false
	}
}

// Task is the aggregate root for a work item. Collaborators mutate it only
// through its business methods; GORM rehydrates persisted rows by scanning
// straight into the fields, bypassing creation-time validation.
type Task struct {
	ID             uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title          string       `gorm:"type:varchar(200);not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         TaskStatus   `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	Priority       TaskPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	Category       TaskCategory `gorm:"type:varchar(30)" json:"category"`
	AssignedTo     uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"assigned_to"`
	CreatedBy      uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"created_by"`
	DueDate        *time.Time   `json:"due_date"`
	CompletedAt    *time.Time   `json:"completed_at"`
	EstimatedHours *int         `json:"estimated_hours"`
	ActualHours    *int         `json:"actual_hours"`
	IsArchived     bool         `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Version        int64        `gorm:"not null;default:0" json:"version"`
}

// NewTaskParams holds the creation-time attributes for a task.
type NewTaskParams struct {
	Title          string
	Description    string
	Priority       TaskPriority
	Category       TaskCategory
	DueDate        *time.Time
	EstimatedHours *int
	AssignedTo     uuid.UUID
	CreatedBy      uuid.UUID
}

// NewTask builds a task in its initial state: status TODO, priority MEDIUM
// unless specified, not archived, version 0.
func NewTask(params NewTaskParams) (*Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > 200 {
		return nil, ErrTitleTooLong
	}
	description := strings.TrimSpace(params.Description)
	if len(description) > 5000 {
		return nil, ErrDescriptionTooLong
	}
	if params.AssignedTo == uuid.Nil {
		return nil, ErrAssigneeRequired
	}
	if params.CreatedBy == uuid.Nil {
		return nil, ErrCreatorRequired
	}

	priority := params.Priority
	if priority == "" {
		priority = TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if !params.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now().UTC()
	return &Task{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		Status:         TaskStatusTodo,
		Priority:       priority,
		Category:       params.Category,
		AssignedTo:     params.AssignedTo,
		CreatedBy:      params.CreatedBy,
		DueDate:        params.DueDate,
		EstimatedHours: params.EstimatedHours,
		IsArchived:     false,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        0,
	}, nil
}

// UpdateStatus transitions the task to a new status. Entering COMPLETED stamps
// CompletedAt; leaving COMPLETED clears it. A same-status transition still
// refreshes UpdatedAt.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if status == "" {
		return ErrStatusRequired
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if t.Status == TaskStatusCompleted && status != TaskStatusCompleted {
		t.CompletedAt = nil
	} else if status == TaskStatusCompleted && t.Status != TaskStatusCompleted {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}

	t.Status = status
	t.touch()
	return nil
}

// AssignTo replaces the assignee.
func (t *Task) AssignTo(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAssigneeRequired
	}
	t.AssignedTo = userID
	t.touch()
	return nil
}

// UpdatePriority replaces the priority.
func (t *Task) UpdatePriority(priority TaskPriority) error {
	if priority == "" {
		return ErrPriorityRequired
	}
	if !priority.IsValid() {
		return ErrInvalidPriority
	}
	t.Priority = priority
	t.touch()
	return nil
}

// UpdateDetails replaces the title when non-blank and always replaces the
// description (trimmed, emptied when blank). Safe to call redundantly.
func (t *Task) UpdateDetails(title, description string) error {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		if len(trimmed) > 200 {
			return ErrTitleTooLong
		}
		t.Title = trimmed
	}
	trimmedDesc := strings.TrimSpace(description)
	if len(trimmedDesc) > 5000 {
		return ErrDescriptionTooLong
	}
	t.Description = trimmedDesc
	t.touch()
	return nil
}

// SetDueDate replaces the due date; nil clears it.
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.touch()
}

// UpdateTimeEstimate replaces either hours field only when the supplied value
// is present and non-negative; prior values are retained otherwise.
func (t *Task) UpdateTimeEstimate(estimatedHours, actualHours *int) {
	if estimatedHours != nil && *estimatedHours >= 0 {
		t.EstimatedHours = estimatedHours
	}
	if actualHours != nil && *actualHours >= 0 {
		t.ActualHours = actualHours
	}
	t.touch()
}

// Archive marks the task archived without removing it.
func (t *Task) Archive() {
	t.IsArchived = true
	t.touch()
}

// Unarchive clears the archived flag.
func (t *Task) Unarchive() {
	t.IsArchived = false
	t.touch()
}

// Complete transitions the task to COMPLETED.
func (t *Task) Complete() error {
	return t.UpdateStatus(TaskStatusCompleted)
}

// IsOverdue reports whether the due date has passed for an uncompleted task.
func (t *Task) IsOverdue() bool {
	return t.DueDate != nil &&
		time.Now().After(*t.DueDate) &&
		t.Status != TaskStatusCompleted
}

// IsDueSoon reports whether the task comes due within the given number of hours.
func (t *Task) IsDueSoon(hoursThreshold int) bool {
	if t.DueDate == nil || t.Status == TaskStatusCompleted {
		return false
	}
	return time.Now().Add(time.Duration(hoursThreshold) * time.Hour).After(*t.DueDate)
}

// IsAssignedTo reports whether the task is assigned to the given user.
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedTo == userID
}

// IsCreatedBy reports whether the task was created by the given user.
func (t *Task) IsCreatedBy(userID uuid.UUID) bool {
	return t.CreatedBy == userID
}

// IsHighPriority reports whether the priority is HIGH or URGENT.
func (t *Task) IsHighPriority() bool {
	return t.Priority == TaskPriorityHigh || t.Priority == TaskPriorityUrgent
}

// IsCompleted reports whether the task is in the COMPLETED status.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsInProgress reports whether the task is in the IN_PROGRESS status.
func (t *Task) IsInProgress() bool {
	return t.Status == TaskStatusInProgress
}

func (t *Task) touch() {
	t.UpdatedAt = time.Now().UTC()
}
