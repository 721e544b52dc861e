package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// AuthTokenStore persists the server-side records of issued bearer tokens.
type AuthTokenStore interface {
	// Create records a newly issued token.
	Create(ctx context.Context, token *domain.AuthToken) error

	// GetByID retrieves a token record by its jti.
	// Returns ErrAuthTokenNotFound if no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)

	// RevokeAllForUser marks every unrevoked token of the user as revoked at
	// the given time and returns how many were revoked.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	// WithTx returns an AuthTokenStore bound to the provided transaction.
	WithTx(tx *sql.Tx) AuthTokenStore
}
