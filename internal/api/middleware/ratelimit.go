package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/phrazzld/task-api/internal/api/shared"
)

// MsgTooManyAttempts is the body message of every 429.
const MsgTooManyAttempts = "Too Many Attempts."

func respondTooManyAttempts(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusTooManyRequests, MsgTooManyAttempts)
}

// userKey keys rate limits by the authenticated user, falling back to the
// client IP for requests that reach the limiter unauthenticated.
func userKey(r *http.Request) (string, error) {
	if user, ok := shared.UserFromContext(r.Context()); ok {
		return "user:" + user.ID.String(), nil
	}
	ip, err := httprate.KeyByIP(r)
	return "ip:" + ip, err
}

// PerUserRateLimit allows limit requests per window for each authenticated
// user. It must run after AuthMiddleware.Authenticate.
func PerUserRateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(userKey),
		httprate.WithLimitHandler(respondTooManyAttempts),
	)
}

// PerIPRateLimit allows limit requests per window for each client IP.
func PerIPRateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyByIP(),
		httprate.WithLimitHandler(respondTooManyAttempts),
	)
}
