package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the server-side record of an issued bearer token. The ID is
// carried in the token's jti claim so a token can be revoked before it
// expires.
type AuthToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// NewAuthToken records a token for userID valid for lifetime from now.
func NewAuthToken(userID uuid.UUID, lifetime time.Duration) *AuthToken {
	now := Now()
	return &AuthToken{
		ID:        uuid.New(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetime),
	}
}

// Active reports whether the token is neither revoked nor expired at now.
func (t *AuthToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
