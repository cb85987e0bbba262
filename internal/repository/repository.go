package repository

import (
	"errors"

	"github.com/google/uuid"

	"github.com/copilot-demo/task-manager/internal/models"
)

// ErrVersionConflict is returned when an update loses the optimistic-concurrency
// race: the row's version no longer matches the version the aggregate was
// loaded with.
var ErrVersionConflict = errors.New("record was modified concurrently")

// TaskFilter holds predicate and paging options for listing tasks.
type TaskFilter struct {
	// Status restricts results to a single status when set.
	Status *models.TaskStatus

	// AssignedTo restricts results to tasks assigned to the given user.
	AssignedTo *uuid.UUID

	// CreatedBy restricts results to tasks created by the given user.
	CreatedBy *uuid.UUID

	// AccessibleBy restricts results to tasks the given user created OR is
	// assigned to.
	AccessibleBy *uuid.UUID

	// ExcludeArchived drops archived tasks from the results.
	ExcludeArchived bool

	// SortByDueDate orders by due date (nulls last) instead of creation time.
	SortByDueDate bool

	Page     int
	PageSize int
}

// TaskRepository defines the persistence contract for tasks.
type TaskRepository interface {
	// Create inserts a new task.
	Create(task *models.Task) error

	// FindByID finds a task by ID.
	FindByID(id uuid.UUID) (*models.Task, error)

	// List retrieves tasks matching the filter, with the total count.
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update writes the task back, guarded by its optimistic version.
	Update(task *models.Task) error

	// Delete permanently removes a task.
	Delete(id uuid.UUID) error

	// CountByStatus counts tasks in the given status.
	CountByStatus(status models.TaskStatus) (int64, error)

	// CountByAssignee counts tasks assigned to the given user.
	CountByAssignee(userID uuid.UUID) (int64, error)
}

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Create inserts a new user.
	Create(user *models.User) error

	// FindByID finds a user by ID.
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username.
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email.
	FindByEmail(email string) (*models.User, error)

	// List retrieves users with pagination, with the total count.
	List(page, pageSize int) ([]models.User, int64, error)

	// Update writes the user back, guarded by its optimistic version.
	Update(user *models.User) error
}
