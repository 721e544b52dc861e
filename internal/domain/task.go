package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID       = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title must be at most 255 characters long")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrEmptyTaskDueDate  = errors.New("task due date cannot be empty")
)

// TaskStatuses lists every valid status in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
}

// Valid reports whether s is one of the enumerated statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Task is a unit of work. Tasks own their comments; deleting a task removes
// them too.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     Date       `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task with a fresh ID and timestamps.
func NewTask(title, description string, status TaskStatus, dueDate Date) (*Task, error) {
	now := Now()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len([]rune(t.Title)) > MaxStringLength {
		return ErrTaskTitleTooLong
	}

	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}

	if t.DueDate.IsZero() {
		return ErrEmptyTaskDueDate
	}

	return nil
}

// TaskUpdate is a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	DueDate     *Date
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.DueDate == nil
}

// Apply merges u into t and bumps UpdatedAt. t is left unchanged if the
// merged result is invalid.
func (t *Task) Apply(u TaskUpdate) error {
	if u.IsEmpty() {
		return nil
	}

	merged := *t
	if u.Title != nil {
		merged.Title = *u.Title
	}
	if u.Description != nil {
		merged.Description = *u.Description
	}
	if u.Status != nil {
		merged.Status = *u.Status
	}
	if u.DueDate != nil {
		merged.DueDate = *u.DueDate
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	merged.UpdatedAt = Now()
	*t = merged
	return nil
}
