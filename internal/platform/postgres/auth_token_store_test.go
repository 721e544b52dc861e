package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/phrazzld/task-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresAuthTokenStore(t *testing.T) {
	t.Parallel()

	db := testdb.Open(t)
	ctx := context.Background()
	s := postgres.NewPostgresAuthTokenStore(db, nil)

	ann := createUser(t, db, "ann@example.com")
	bob := createUser(t, db, "bob@example.com")

	first := domain.NewAuthToken(ann.ID, time.Hour)
	second := domain.NewAuthToken(ann.ID, time.Hour)
	bobs := domain.NewAuthToken(bob.ID, time.Hour)
	for _, tok := range []*domain.AuthToken{first, second, bobs} {
		require.NoError(t, s.Create(ctx, tok))
	}

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, got.UserID)
	assert.True(t, first.ExpiresAt.Equal(got.ExpiresAt))
	assert.Nil(t, got.RevokedAt)
	assert.True(t, got.Active(domain.Now()))

	revokedAt := domain.Now()
	n, err := s.RevokeAllForUser(ctx, ann.ID, revokedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		tok, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, tok.RevokedAt)
		assert.False(t, tok.Active(domain.Now()))
	}

	other, err := s.GetByID(ctx, bobs.ID)
	require.NoError(t, err)
	assert.Nil(t, other.RevokedAt, "other users' tokens stay active")

	n, err = s.RevokeAllForUser(ctx, ann.ID, domain.Now())
	require.NoError(t, err)
	assert.Zero(t, n, "already revoked tokens are not touched again")

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrAuthTokenNotFound)

	err = s.Create(ctx, domain.NewAuthToken(uuid.New(), time.Hour))
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
