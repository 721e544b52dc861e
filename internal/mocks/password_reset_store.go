package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MockPasswordResetStore implements store.PasswordResetStore for testing
type MockPasswordResetStore struct {
	UpsertFn        func(ctx context.Context, reset *domain.PasswordReset) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.PasswordReset, error)
	DeleteByEmailFn func(ctx context.Context, email string) error

	mu     sync.Mutex
	resets map[string]*domain.PasswordReset
}

var _ store.PasswordResetStore = (*MockPasswordResetStore)(nil)

// NewMockPasswordResetStore creates a new mock store backed by a map.
func NewMockPasswordResetStore() *MockPasswordResetStore {
	return &MockPasswordResetStore{resets: make(map[string]*domain.PasswordReset)}
}

// Upsert implements the PasswordResetStore interface
func (m *MockPasswordResetStore) Upsert(ctx context.Context, reset *domain.PasswordReset) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, reset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[reset.Email] = reset
	return nil
}

// GetByEmail implements the PasswordResetStore interface
func (m *MockPasswordResetStore) GetByEmail(ctx context.Context, email string) (*domain.PasswordReset, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.resets[email]; ok {
		return r, nil
	}
	return nil, store.ErrPasswordResetNotFound
}

// DeleteByEmail implements the PasswordResetStore interface
func (m *MockPasswordResetStore) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFn != nil {
		return m.DeleteByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.resets, email)
	return nil
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockPasswordResetStore) WithTx(*sql.Tx) store.PasswordResetStore {
	return m
}
