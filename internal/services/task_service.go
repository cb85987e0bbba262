package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/copilot-demo/task-manager/internal/models"
	"github.com/copilot-demo/task-manager/internal/repository"
)

var (
	// ErrTaskNotFound is returned when a task does not exist or the actor has
	// no right to know it exists. The two cases are deliberately conflated so
	// inaccessible tasks are indistinguishable from absent ones.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskConflict is returned when an update carries a stale version.
	ErrTaskConflict = errors.New("task was modified concurrently")
)

// TaskService orchestrates task operations and enforces per-operation access
// control for the acting user.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title          string
	Description    string
	Priority       models.TaskPriority
	Category       models.TaskCategory
	DueDate        *time.Time
	EstimatedHours *int
	AssignedTo     *uuid.UUID
}

// ListTasksInput represents filters for listing tasks.
type ListTasksInput struct {
	Status   *models.TaskStatus
	Page     int
	PageSize int
}

// UpdateTaskInput represents a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	Status         *models.TaskStatus
	Priority       *models.TaskPriority
	AssignedTo     *uuid.UUID
	DueDate        *time.Time
	ClearDueDate   bool
	EstimatedHours *int
	ActualHours    *int

	// Version, when set, must match the stored aggregate or the update is
	// rejected before any field is applied.
	Version *int64
}

// CreateTask builds a new task for the actor. The task starts in TODO and is
// assigned to the creator unless an assignee is given.
func (s *TaskService) CreateTask(input CreateTaskInput, actor Actor) (*models.Task, error) {
	assignedTo := actor.ID
	if input.AssignedTo != nil {
		assignedTo = *input.AssignedTo
	}

	task, err := models.NewTask(models.NewTaskParams{
		Title:          input.Title,
		Description:    input.Description,
		Priority:       input.Priority,
		Category:       input.Category,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		AssignedTo:     assignedTo,
		CreatedBy:      actor.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns a task the actor is allowed to view.
func (s *TaskService) GetTask(taskID uuid.UUID, actor Actor) (*models.Task, error) {
	return s.loadAccessible(taskID, actor, TaskOperationView)
}

// ListTasks returns tasks visible to the actor: all non-archived tasks for
// admins, otherwise only tasks the actor created or is assigned to. A status
// filter narrows the result when set.
func (s *TaskService) ListTasks(input ListTasksInput, actor Actor) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		Status:   input.Status,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	if actor.IsAdmin() {
		if input.Status == nil {
			filter.ExcludeArchived = true
		}
	} else {
		actorID := actor.ID
		filter.AccessibleBy = &actorID
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// ListAssignedTasks returns tasks assigned to the actor, ordered by due date.
func (s *TaskService) ListAssignedTasks(actor Actor, page, pageSize int) ([]models.Task, int64, error) {
	actorID := actor.ID
	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		AssignedTo:    &actorID,
		SortByDueDate: true,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assigned tasks: %w", err)
	}
	return tasks, total, nil
}

// ListCreatedTasks returns tasks created by the actor.
func (s *TaskService) ListCreatedTasks(actor Actor, page, pageSize int) ([]models.Task, int64, error) {
	actorID := actor.ID
	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		CreatedBy: &actorID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list created tasks: %w", err)
	}
	return tasks, total, nil
}

// UpdateTask applies a partial update through the entity's business methods
// and persists the result under the optimistic version guard.
func (s *TaskService) UpdateTask(taskID uuid.UUID, input UpdateTaskInput, actor Actor) (*models.Task, error) {
	task, err := s.loadAccessible(taskID, actor, TaskOperationUpdate)
	if err != nil {
		return nil, err
	}

	if input.Version != nil && *input.Version != task.Version {
		return nil, ErrTaskConflict
	}

	if input.Title != nil || input.Description != nil {
		// Resolve both final values first so a combined update never reads
		// a stale copy of the other field.
		title := ""
		if input.Title != nil {
			title = *input.Title
		}
		description := task.Description
		if input.Description != nil {
			description = *input.Description
		}
		if err := task.UpdateDetails(title, description); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := task.UpdateStatus(*input.Status); err != nil {
			return nil, err
		}
	}
	if input.Priority != nil {
		if err := task.UpdatePriority(*input.Priority); err != nil {
			return nil, err
		}
	}
	if input.AssignedTo != nil {
		if err := task.AssignTo(*input.AssignedTo); err != nil {
			return nil, err
		}
	}
	if input.ClearDueDate {
		task.SetDueDate(nil)
	} else if input.DueDate != nil {
		task.SetDueDate(input.DueDate)
	}
	if input.EstimatedHours != nil || input.ActualHours != nil {
		task.UpdateTimeEstimate(input.EstimatedHours, input.ActualHours)
	}

	if err := s.saveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask permanently removes a task the actor created (or any task, for
// admins).
func (s *TaskService) DeleteTask(taskID uuid.UUID, actor Actor) error {
	task, err := s.loadAccessible(taskID, actor, TaskOperationDelete)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ArchiveTask soft-deletes a task by marking it archived.
func (s *TaskService) ArchiveTask(taskID uuid.UUID, actor Actor) (*models.Task, error) {
	task, err := s.loadAccessible(taskID, actor, TaskOperationUpdate)
	if err != nil {
		return nil, err
	}

	task.Archive()
	if err := s.saveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// UnarchiveTask clears the archived flag on a task.
func (s *TaskService) UnarchiveTask(taskID uuid.UUID, actor Actor) (*models.Task, error) {
	task, err := s.loadAccessible(taskID, actor, TaskOperationUpdate)
	if err != nil {
		return nil, err
	}

	task.Unarchive()
	if err := s.saveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// loadAccessible loads a task and applies the access policy for the given
// operation. Denials surface as ErrTaskNotFound, same as absent rows.
func (s *TaskService) loadAccessible(taskID uuid.UUID, actor Actor, op TaskOperation) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if !CanAccessTask(task, actor, op) {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *TaskService) saveTask(task *models.Task) error {
	if err := s.taskRepo.Update(task); err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionConflict):
			return ErrTaskConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrTaskNotFound
		default:
			return fmt.Errorf("failed to update task: %w", err)
		}
	}
	return nil
}
