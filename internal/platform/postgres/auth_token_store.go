package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// PostgresAuthTokenStore implements the store.AuthTokenStore interface.
type PostgresAuthTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthTokenStore creates a new AuthTokenStore on the given
// connection or transaction. If logger is nil, the default logger is used.
func NewPostgresAuthTokenStore(db store.DBTX, logger *slog.Logger) *PostgresAuthTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAuthTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "auth_token_store")),
	}
}

// Ensure PostgresAuthTokenStore implements store.AuthTokenStore interface
var _ store.AuthTokenStore = (*PostgresAuthTokenStore)(nil)

// WithTx implements store.AuthTokenStore.WithTx
func (s *PostgresAuthTokenStore) WithTx(tx *sql.Tx) store.AuthTokenStore {
	return &PostgresAuthTokenStore{db: tx, logger: s.logger}
}

// Create implements store.AuthTokenStore.Create
func (s *PostgresAuthTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO auth_tokens (id, user_id, issued_at, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		token.UserID,
		token.IssuedAt,
		token.ExpiresAt,
		timeOrNil(token.RevokedAt),
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrUserNotFound
		}
		log.Error("failed to record auth token",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", token.UserID.String()))
		return store.NewStoreError("auth_token", "create", "insert failed", MapError(err))
	}

	return nil
}

// GetByID implements store.AuthTokenStore.GetByID
func (s *PostgresAuthTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, issued_at, expires_at, revoked_at
		FROM auth_tokens
		WHERE id = $1
	`
	var (
		token     domain.AuthToken
		revokedAt sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.IssuedAt,
		&token.ExpiresAt,
		&revokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthTokenNotFound
		}
		log.Error("failed to load auth token",
			slog.String("error", redact.Error(err)),
			slog.String("token_id", id.String()))
		return nil, store.NewStoreError("auth_token", "get", "query failed", MapError(err))
	}

	token.IssuedAt = token.IssuedAt.UTC()
	token.ExpiresAt = token.ExpiresAt.UTC()
	token.RevokedAt = nullTime(revokedAt)
	return &token, nil
}

// RevokeAllForUser implements store.AuthTokenStore.RevokeAllForUser
func (s *PostgresAuthTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE auth_tokens
		SET revoked_at = $1
		WHERE user_id = $2 AND revoked_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, at.UTC(), userID)
	if err != nil {
		log.Error("failed to revoke auth tokens",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return 0, store.NewStoreError("auth_token", "revoke", "update failed", MapError(err))
	}

	revoked, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("auth_token", "revoke", "rows affected unavailable", err)
	}

	log.Debug("auth tokens revoked",
		slog.String("user_id", userID.String()),
		slog.Int64("count", revoked))
	return revoked, nil
}
