package services

import (
	"github.com/google/uuid"

	"github.com/copilot-demo/task-manager/internal/models"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

// IsAdmin reports whether the actor carries the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// TaskOperation names an access-controlled task operation.
type TaskOperation string

const (
	TaskOperationView   TaskOperation = "view"
	TaskOperationUpdate TaskOperation = "update"
	TaskOperationDelete TaskOperation = "delete"
)

// CanAccessTask decides whether the actor may perform the operation on the
// task. Admins may do anything; viewing requires being creator or assignee;
// updating and deleting require being the creator.
func CanAccessTask(task *models.Task, actor Actor, op TaskOperation) bool {
	if actor.IsAdmin() {
		return true
	}

	switch op {
	case TaskOperationView:
		return task.IsCreatedBy(actor.ID) || task.IsAssignedTo(actor.ID)
	case TaskOperationUpdate, TaskOperationDelete:
		return task.IsCreatedBy(actor.ID)
	default:
		return false
	}
}
