package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/stretchr/testify/require"
)

// createTask inserts a task due on dueDate whose created_at is offset from a
// fixed base, giving tests a deterministic creation order.
func createTask(
	t *testing.T,
	db store.DBTX,
	title string,
	status domain.TaskStatus,
	dueDate domain.Date,
	createdOffset time.Duration,
) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(title, "description of "+title, status, dueDate)
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	task.CreatedAt = base.Add(createdOffset)
	task.UpdatedAt = task.CreatedAt

	require.NoError(t, postgres.NewPostgresTaskStore(db, nil).Create(context.Background(), task))
	return task
}

// createUser inserts a user with the given email.
func createUser(t *testing.T, db store.DBTX, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test User", email, "$2a$04$abcdefghijklmnopqrstuuN3u4P4i1m7pH5b8xq0rS6a9Tz1yW2eG")
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresUserStore(db, nil).Create(context.Background(), user))
	return user
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }

func datePtr(d domain.Date) *domain.Date { return &d }
