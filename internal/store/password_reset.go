package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/task-api/internal/domain"
)

// PasswordResetStore persists pending password resets, one per email.
type PasswordResetStore interface {
	// Upsert stores the reset, replacing any reset pending for the same email.
	Upsert(ctx context.Context, reset *domain.PasswordReset) error

	// GetByEmail returns the pending reset for email.
	// Returns ErrPasswordResetNotFound if there is none.
	GetByEmail(ctx context.Context, email string) (*domain.PasswordReset, error)

	// DeleteByEmail removes the pending reset for email, if any.
	DeleteByEmail(ctx context.Context, email string) error

	// WithTx returns a PasswordResetStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PasswordResetStore
}
