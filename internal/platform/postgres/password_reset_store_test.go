package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/phrazzld/task-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresPasswordResetStore(t *testing.T) {
	t.Parallel()

	db := testdb.Open(t)
	ctx := context.Background()
	s := postgres.NewPostgresPasswordResetStore(db, nil)

	_, err := s.GetByEmail(ctx, "ann@example.com")
	assert.ErrorIs(t, err, store.ErrPasswordResetNotFound)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Upsert(ctx, &domain.PasswordReset{
		Email: "ann@example.com", TokenHash: "hash-1", CreatedAt: created,
	}))

	// A second request replaces the pending token.
	require.NoError(t, s.Upsert(ctx, &domain.PasswordReset{
		Email: "ann@example.com", TokenHash: "hash-2", CreatedAt: created.Add(time.Minute),
	}))

	got, err := s.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", got.TokenHash)
	assert.True(t, created.Add(time.Minute).Equal(got.CreatedAt))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM password_reset_tokens").Scan(&count))
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteByEmail(ctx, "ann@example.com"))
	_, err = s.GetByEmail(ctx, "ann@example.com")
	assert.ErrorIs(t, err, store.ErrPasswordResetNotFound)

	// Deleting nothing is not an error.
	require.NoError(t, s.DeleteByEmail(ctx, "ann@example.com"))
}
