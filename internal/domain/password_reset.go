package domain

import "time"

// PasswordReset is the pending reset for an email address. Only a hash of
// the token is kept; a newer request replaces an older one.
type PasswordReset struct {
	Email     string
	TokenHash string
	CreatedAt time.Time
}

// Expired reports whether the reset is older than lifetime at now.
func (p *PasswordReset) Expired(now time.Time, lifetime time.Duration) bool {
	return !now.Before(p.CreatedAt.Add(lifetime))
}
