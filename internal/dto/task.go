package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/copilot-demo/task-manager/internal/models"
	"github.com/copilot-demo/task-manager/internal/utils"
)

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title          string              `json:"title" binding:"required,max=200"`
	Description    string              `json:"description" binding:"omitempty,max=5000"`
	Priority       models.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Category       models.TaskCategory `json:"category" binding:"omitempty"`
	DueDate        *time.Time          `json:"due_date"`
	AssignedTo     *uuid.UUID          `json:"assigned_to"`
	EstimatedHours *int                `json:"estimated_hours" binding:"omitempty,min=1,max=1000"`
}

// UpdateTaskRequest is the payload for a partial task update. Absent fields
// are left untouched.
type UpdateTaskRequest struct {
	Title          *string              `json:"title" binding:"omitempty,max=200"`
	Description    *string              `json:"description" binding:"omitempty,max=5000"`
	Status         *models.TaskStatus   `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS COMPLETED CANCELLED"`
	Priority       *models.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedTo     *uuid.UUID           `json:"assigned_to"`
	DueDate        *time.Time           `json:"due_date"`
	EstimatedHours *int                 `json:"estimated_hours" binding:"omitempty,min=1,max=1000"`
	ActualHours    *int                 `json:"actual_hours" binding:"omitempty,min=0,max=2000"`

	// ClearDueDate removes the due date. Needed because an absent due_date
	// and a cleared one are indistinguishable in the JSON body.
	ClearDueDate bool `json:"clear_due_date"`

	// Version, when supplied, must match the stored task or the update is
	// rejected with a conflict.
	Version *int64 `json:"version"`
}

// TaskResponse is the full task projection.
type TaskResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	Category       models.TaskCategory `json:"category,omitempty"`
	DueDate        *time.Time          `json:"due_date"`
	AssignedTo     uuid.UUID           `json:"assigned_to"`
	CreatedBy      uuid.UUID           `json:"created_by"`
	EstimatedHours *int                `json:"estimated_hours"`
	ActualHours    *int                `json:"actual_hours"`
	IsArchived     bool                `json:"is_archived"`
	CompletedAt    *time.Time          `json:"completed_at"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Version        int64               `json:"version"`
}

// TaskSummaryResponse is the reduced projection used in list responses. It
// omits description, hours, completion time and version.
type TaskSummaryResponse struct {
	ID         uuid.UUID           `json:"id"`
	Title      string              `json:"title"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	Category   models.TaskCategory `json:"category,omitempty"`
	DueDate    *time.Time          `json:"due_date"`
	AssignedTo uuid.UUID           `json:"assigned_to"`
	CreatedBy  uuid.UUID           `json:"created_by"`
	IsArchived bool                `json:"is_archived"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// TaskListResponse is a paginated list of task summaries.
type TaskListResponse struct {
	Tasks      []TaskSummaryResponse    `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskResponse converts a Task to its full projection.
func ToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		Category:       task.Category,
		DueDate:        task.DueDate,
		AssignedTo:     task.AssignedTo,
		CreatedBy:      task.CreatedBy,
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
		IsArchived:     task.IsArchived,
		CompletedAt:    task.CompletedAt,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
		Version:        task.Version,
	}
}

// ToTaskSummaryResponse converts a Task to its summary projection.
func ToTaskSummaryResponse(task *models.Task) TaskSummaryResponse {
	return TaskSummaryResponse{
		ID:         task.ID,
		Title:      task.Title,
		Status:     task.Status,
		Priority:   task.Priority,
		Category:   task.Category,
		DueDate:    task.DueDate,
		AssignedTo: task.AssignedTo,
		CreatedBy:  task.CreatedBy,
		IsArchived: task.IsArchived,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

// ToTaskListResponse converts a page of tasks to the list response.
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskSummaryResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskSummaryResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks:      items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
