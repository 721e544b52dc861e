package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MockAuthTokenStore implements store.AuthTokenStore for testing
type MockAuthTokenStore struct {
	CreateFn           func(ctx context.Context, token *domain.AuthToken) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)
	RevokeAllForUserFn func(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	mu     sync.Mutex
	tokens map[uuid.UUID]*domain.AuthToken
}

var _ store.AuthTokenStore = (*MockAuthTokenStore)(nil)

// NewMockAuthTokenStore creates a new mock store backed by a map.
func NewMockAuthTokenStore() *MockAuthTokenStore {
	return &MockAuthTokenStore{tokens: make(map[uuid.UUID]*domain.AuthToken)}
}

// Create implements the AuthTokenStore interface
func (m *MockAuthTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.ID] = token
	return nil
}

// GetByID implements the AuthTokenStore interface
func (m *MockAuthTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tokens[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, store.ErrAuthTokenNotFound
}

// RevokeAllForUser implements the AuthTokenStore interface
func (m *MockAuthTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	if m.RevokeAllForUserFn != nil {
		return m.RevokeAllForUserFn(ctx, userID, at)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, t := range m.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			revoked := at
			t.RevokedAt = &revoked
			n++
		}
	}
	return n, nil
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockAuthTokenStore) WithTx(*sql.Tx) store.AuthTokenStore {
	return m
}
