package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// serve routes a request through a chi router so path parameters resolve.
// Every request carries a trace ID.
func serve(t *testing.T, pattern string, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serveLogged(t, nil, pattern, handler, method, target, body)
}

// serveLogged is serve with log installed as the request logger.
func serveLogged(
	t *testing.T,
	log *slog.Logger,
	pattern string,
	handler http.HandlerFunc,
	method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.SetTraceID(req.Context())
			if log != nil {
				ctx = logger.WithLogger(ctx, log)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return buf.String()
}

type testEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	TraceID string              `json:"trace_id"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func mustTask(t *testing.T, title string) *domain.Task {
	t.Helper()
	due, err := domain.ParseDate("2025-06-01")
	require.NoError(t, err)
	task, err := domain.NewTask(title, "details", domain.TaskStatusPending, due)
	require.NoError(t, err)
	return task
}

func mustUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Jane Doe", "jane@example.com", "hashed")
	require.NoError(t, err)
	return user
}


// extractJSON returns the raw JSON of one top-level key of an object.
func extractJSON(t *testing.T, data json.RawMessage, key string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	raw, ok := fields[key]
	require.True(t, ok, "missing key %q in %s", key, data)
	return string(raw)
}

// serveWithUser calls handler with user already authenticated.
func serveWithUser(t *testing.T, handler http.HandlerFunc, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(shared.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}
