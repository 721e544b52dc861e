package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	ListByTaskFn func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)

	mu       sync.Mutex
	comments []*domain.Comment
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// NewMockCommentStore creates an empty mock store.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{}
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, comment)
	return nil
}

// ListByTask implements the CommentStore interface
func (m *MockCommentStore) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.ListByTaskFn != nil {
		return m.ListByTaskFn(ctx, taskID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Comment{}
	for _, c := range m.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockCommentStore) WithTx(*sql.Tx) store.CommentStore {
	return m
}
