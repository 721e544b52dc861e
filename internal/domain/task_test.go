package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	due := NewDate(2024, time.March, 15)
	task, err := NewTask("Write report", "Quarterly numbers", TaskStatusPending, due)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.True(t, task.DueDate.Equal(due))
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{
		ID:      uuid.New(),
		Title:   "Title",
		Status:  TaskStatusCompleted,
		DueDate: NewDate(2024, time.January, 1),
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{"valid", func(*Task) {}, nil},
		{"missing id", func(t *Task) { t.ID = uuid.Nil }, ErrEmptyTaskID},
		{"empty title", func(t *Task) { t.Title = "" }, ErrEmptyTaskTitle},
		{"long title", func(t *Task) { t.Title = strings.Repeat("x", 256) }, ErrTaskTitleTooLong},
		{"bad status", func(t *Task) { t.Status = "done" }, ErrInvalidTaskStatus},
		{"no due date", func(t *Task) { t.DueDate = Date{} }, ErrEmptyTaskDueDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := valid
			tc.mutate(&task)
			assert.Equal(t, tc.wantErr, task.Validate())
		})
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	original, err := NewTask("Title", "Body", TaskStatusPending, NewDate(2024, time.January, 1))
	require.NoError(t, err)

	t.Run("empty update is a no-op", func(t *testing.T) {
		task := *original
		require.NoError(t, task.Apply(TaskUpdate{}))
		assert.Equal(t, *original, task)
	})

	t.Run("only the given field changes", func(t *testing.T) {
		task := *original
		status := TaskStatusInProgress
		require.NoError(t, task.Apply(TaskUpdate{Status: &status}))

		assert.Equal(t, TaskStatusInProgress, task.Status)
		assert.Equal(t, original.Title, task.Title)
		assert.Equal(t, original.Description, task.Description)
		assert.True(t, task.DueDate.Equal(original.DueDate))
		assert.False(t, task.UpdatedAt.Before(original.UpdatedAt))
	})

	t.Run("invalid merge leaves task untouched", func(t *testing.T) {
		task := *original
		empty := ""
		err := task.Apply(TaskUpdate{Title: &empty})
		assert.ErrorIs(t, err, ErrEmptyTaskTitle)
		assert.Equal(t, *original, task)
	})
}

func TestTaskStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range TaskStatuses() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TaskStatus("in_progress").Valid())
	assert.False(t, TaskStatus("").Valid())
}
