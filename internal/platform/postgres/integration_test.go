//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/phrazzld/task-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPostgresStores_Integration runs the stores against a real PostgreSQL
// server from DATABASE_URL. Each subtest rolls its changes back.
func TestPostgresStores_Integration(t *testing.T) {
	db := testdb.OpenPostgres(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, nil)
		user, err := domain.NewUser("Ann", "ann-"+uuid.NewString()+"@example.com", "hash")
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, user))

		dup := *user
		dup.ID = uuid.New()
		assert.ErrorIs(t, users.Create(ctx, &dup), store.ErrEmailExists)
	})

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		tasks := postgres.NewPostgresTaskStore(tx, nil)
		comments := postgres.NewPostgresCommentStore(tx, nil)

		task, err := domain.NewTask("Integration", "desc", domain.TaskStatusPending, domain.NewDate(2024, 3, 15))
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		got, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", got.DueDate.String())

		listed, total, err := tasks.List(ctx,
			domain.TaskFilter{DueDate: datePtr(domain.NewDate(2024, 3, 15))},
			domain.PageRequest{Page: 1, PerPage: 10})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
		assert.NotEmpty(t, listed)

		orphan, err := domain.NewComment(uuid.New(), "orphan", "Ann")
		require.NoError(t, err)
		assert.ErrorIs(t, comments.Create(ctx, orphan), store.ErrTaskNotFound)
	})
}
