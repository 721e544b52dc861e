package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Comment
var (
	ErrEmptyCommentID       = errors.New("comment ID cannot be empty")
	ErrEmptyCommentTaskID   = errors.New("comment task ID cannot be empty")
	ErrEmptyCommentContent  = errors.New("comment content cannot be empty")
	ErrEmptyCommentAuthor   = errors.New("comment author name cannot be empty")
	ErrCommentAuthorTooLong = errors.New("comment author name must be at most 255 characters long")
)

// Comment is an immutable note attached to a task.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	TaskID     uuid.UUID `json:"task_id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewComment creates a Comment on the given task.
func NewComment(taskID uuid.UUID, content, authorName string) (*Comment, error) {
	now := Now()
	comment := &Comment{
		ID:         uuid.New(),
		TaskID:     taskID,
		Content:    content,
		AuthorName: authorName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}

	if c.TaskID == uuid.Nil {
		return ErrEmptyCommentTaskID
	}

	if c.Content == "" {
		return ErrEmptyCommentContent
	}

	if c.AuthorName == "" {
		return ErrEmptyCommentAuthor
	}

	if len([]rune(c.AuthorName)) > MaxStringLength {
		return ErrCommentAuthorTooLong
	}

	return nil
}
