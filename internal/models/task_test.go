package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTaskParams() NewTaskParams {
	return NewTaskParams{
		Title:      "Write release notes",
		AssignedTo: uuid.New(),
		CreatedBy:  uuid.New(),
	}
}

func TestNewTask_Defaults(t *testing.T) {
	params := validTaskParams()
	task, err := NewTask(params)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, TaskStatusTodo, task.Status)
	assert.Equal(t, TaskPriorityMedium, task.Priority)
	assert.Equal(t, params.AssignedTo, task.AssignedTo)
	assert.Equal(t, params.CreatedBy, task.CreatedBy)
	assert.False(t, task.IsArchived)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, int64(0), task.Version)
}

func TestNewTask_TrimsTitleAndDescription(t *testing.T) {
	params := validTaskParams()
	params.Title = "  Fix login flow  "
	params.Description = "  steps to reproduce  "

	task, err := NewTask(params)
	require.NoError(t, err)
	assert.Equal(t, "Fix login flow", task.Title)
	assert.Equal(t, "steps to reproduce", task.Description)
}

func TestNewTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewTaskParams)
		wantErr error
	}{
		{"blank title", func(p *NewTaskParams) { p.Title = "   " }, ErrTitleRequired},
		{"title too long", func(p *NewTaskParams) { p.Title = strings.Repeat("x", 201) }, ErrTitleTooLong},
		{"description too long", func(p *NewTaskParams) { p.Description = strings.Repeat("x", 5001) }, ErrDescriptionTooLong},
		{"missing assignee", func(p *NewTaskParams) { p.AssignedTo = uuid.Nil }, ErrAssigneeRequired},
		{"missing creator", func(p *NewTaskParams) { p.CreatedBy = uuid.Nil }, ErrCreatorRequired},
		{"invalid priority", func(p *NewTaskParams) { p.Priority = "CRITICAL" }, ErrInvalidPriority},
		{"invalid category", func(p *NewTaskParams) { p.Category = "CHORES" }, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validTaskParams()
			tt.mutate(&params)
			_, err := NewTask(params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateStatus_CompletedStampsTimestamp(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	require.NoError(t, task.UpdateStatus(TaskStatusCompleted))
	require.NotNil(t, task.CompletedAt)
	assert.WithinDuration(t, time.Now().UTC(), *task.CompletedAt, time.Minute)
	assert.True(t, task.IsCompleted())
}

func TestUpdateStatus_ReopeningClearsTimestamp(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	require.NoError(t, task.UpdateStatus(TaskStatusCompleted))
	require.NoError(t, task.UpdateStatus(TaskStatusInProgress))

	assert.Nil(t, task.CompletedAt)
	assert.True(t, task.IsInProgress())
}

func TestUpdateStatus_CompletedToCompletedKeepsTimestamp(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	require.NoError(t, task.UpdateStatus(TaskStatusCompleted))
	first := *task.CompletedAt

	require.NoError(t, task.UpdateStatus(TaskStatusCompleted))
	assert.Equal(t, first, *task.CompletedAt)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	assert.ErrorIs(t, task.UpdateStatus(""), ErrStatusRequired)
	assert.ErrorIs(t, task.UpdateStatus("DONE"), ErrInvalidStatus)
	assert.Equal(t, TaskStatusTodo, task.Status)
}

func TestUpdateDetails(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)
	original := task.Title

	// Blank title keeps the current one, description is always replaced.
	require.NoError(t, task.UpdateDetails("  ", "new description"))
	assert.Equal(t, original, task.Title)
	assert.Equal(t, "new description", task.Description)

	require.NoError(t, task.UpdateDetails("New title", ""))
	assert.Equal(t, "New title", task.Title)
	assert.Empty(t, task.Description)

	assert.ErrorIs(t, task.UpdateDetails(strings.Repeat("x", 201), ""), ErrTitleTooLong)
}

func TestUpdateTimeEstimate_IgnoresNegativeAndAbsent(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	eight := 8
	task.UpdateTimeEstimate(&eight, nil)
	require.NotNil(t, task.EstimatedHours)
	assert.Equal(t, 8, *task.EstimatedHours)
	assert.Nil(t, task.ActualHours)

	negative := -3
	five := 5
	task.UpdateTimeEstimate(&negative, &five)
	assert.Equal(t, 8, *task.EstimatedHours)
	assert.Equal(t, 5, *task.ActualHours)
}

func TestAssignTo(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	assert.ErrorIs(t, task.AssignTo(uuid.Nil), ErrAssigneeRequired)

	next := uuid.New()
	require.NoError(t, task.AssignTo(next))
	assert.True(t, task.IsAssignedTo(next))
}

func TestIsOverdue(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)
	assert.False(t, task.IsOverdue(), "no due date")

	past := time.Now().Add(-time.Hour)
	task.SetDueDate(&past)
	assert.True(t, task.IsOverdue())

	require.NoError(t, task.UpdateStatus(TaskStatusCompleted))
	assert.False(t, task.IsOverdue(), "completed tasks are never overdue")
}

func TestIsDueSoon(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)
	assert.False(t, task.IsDueSoon(24))

	soon := time.Now().Add(2 * time.Hour)
	task.SetDueDate(&soon)
	assert.True(t, task.IsDueSoon(24))
	assert.False(t, task.IsDueSoon(1))
}

func TestArchiveUnarchive(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)

	task.Archive()
	assert.True(t, task.IsArchived)

	task.Unarchive()
	assert.False(t, task.IsArchived)
}

func TestIsHighPriority(t *testing.T) {
	task, err := NewTask(validTaskParams())
	require.NoError(t, err)
	assert.False(t, task.IsHighPriority())

	require.NoError(t, task.UpdatePriority(TaskPriorityHigh))
	assert.True(t, task.IsHighPriority())

	require.NoError(t, task.UpdatePriority(TaskPriorityUrgent))
	assert.True(t, task.IsHighPriority())
}
