package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create saves a new comment.
	// Returns ErrTaskNotFound if the parent task does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByTask returns the comments of a task, oldest first.
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)

	// WithTx returns a CommentStore bound to the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
