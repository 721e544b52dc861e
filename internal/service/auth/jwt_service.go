package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// JWTService defines operations for managing JWT bearer tokens.
type JWTService interface {
	// GenerateToken signs a JWT for the given token record. The record's ID
	// becomes the jti claim, its UserID the subject.
	GenerateToken(ctx context.Context, token *domain.AuthToken) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString and
	// extracts its claims. It does not consult the token table; revocation
	// is checked by the caller.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by a bearer token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// TokenID is the jti claim, the primary key of the auth_tokens row.
	TokenID uuid.UUID

	IssuedAt  time.Time
	ExpiresAt time.Time
}
