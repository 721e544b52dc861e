package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// PostgresPasswordResetStore implements the store.PasswordResetStore interface.
type PostgresPasswordResetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPasswordResetStore creates a new PasswordResetStore on the given
// connection or transaction. If logger is nil, the default logger is used.
func NewPostgresPasswordResetStore(db store.DBTX, logger *slog.Logger) *PostgresPasswordResetStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPasswordResetStore{
		db:     db,
		logger: logger.With(slog.String("component", "password_reset_store")),
	}
}

// Ensure PostgresPasswordResetStore implements store.PasswordResetStore interface
var _ store.PasswordResetStore = (*PostgresPasswordResetStore)(nil)

// WithTx implements store.PasswordResetStore.WithTx
func (s *PostgresPasswordResetStore) WithTx(tx *sql.Tx) store.PasswordResetStore {
	return &PostgresPasswordResetStore{db: tx, logger: s.logger}
}

// Upsert implements store.PasswordResetStore.Upsert
func (s *PostgresPasswordResetStore) Upsert(ctx context.Context, reset *domain.PasswordReset) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO password_reset_tokens (email, token_hash, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET token_hash = excluded.token_hash, created_at = excluded.created_at
	`
	if _, err := s.db.ExecContext(ctx, query, reset.Email, reset.TokenHash, reset.CreatedAt); err != nil {
		log.Error("failed to store password reset",
			slog.String("error", redact.Error(err)),
			slog.String("email", redact.Email(reset.Email)))
		return store.NewStoreError("password_reset", "upsert", "upsert failed", MapError(err))
	}

	return nil
}

// GetByEmail implements store.PasswordResetStore.GetByEmail
func (s *PostgresPasswordResetStore) GetByEmail(ctx context.Context, email string) (*domain.PasswordReset, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT email, token_hash, created_at FROM password_reset_tokens WHERE email = $1`

	var reset domain.PasswordReset
	err := s.db.QueryRowContext(ctx, query, email).Scan(&reset.Email, &reset.TokenHash, &reset.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPasswordResetNotFound
		}
		log.Error("failed to load password reset",
			slog.String("error", redact.Error(err)),
			slog.String("email", redact.Email(email)))
		return nil, store.NewStoreError("password_reset", "get", "query failed", MapError(err))
	}

	reset.CreatedAt = reset.CreatedAt.UTC()
	return &reset, nil
}

// DeleteByEmail implements store.PasswordResetStore.DeleteByEmail
func (s *PostgresPasswordResetStore) DeleteByEmail(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE email = $1`, email); err != nil {
		log.Error("failed to delete password reset",
			slog.String("error", redact.Error(err)),
			slog.String("email", redact.Email(email)))
		return store.NewStoreError("password_reset", "delete", "delete failed", MapError(err))
	}

	return nil
}
