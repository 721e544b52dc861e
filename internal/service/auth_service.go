package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/service/auth"
	"github.com/phrazzld/task-api/internal/store"
)

// AuthSession is the result of a successful registration or login.
type AuthSession struct {
	Token string
	User  *domain.User
}

// PasswordResetResult describes a generated reset token. Token is only set
// when tokens are exposed in responses; otherwise it was mailed.
type PasswordResetResult struct {
	Email string
	Token string
}

// AuthService registers users, authenticates credentials and bearer
// tokens, and drives the password reset flow.
type AuthService interface {
	// Register creates a user and issues their first token. A taken email
	// yields a domain.ValidationErrors on "email".
	Register(ctx context.Context, name, email, password string) (*AuthSession, error)

	// Login verifies credentials and issues an additional token.
	// Returns ErrInvalidCredentials on mismatch or unknown email.
	Login(ctx context.Context, email, password string) (*AuthSession, error)

	// Logout revokes every live token of the user.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Authenticate resolves a bearer token to its user.
	// Returns ErrUnauthenticated for any unusable token.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// SendResetToken generates a reset token for the account with email,
	// replacing any pending one. An unknown email yields a
	// domain.ValidationErrors on "email".
	SendResetToken(ctx context.Context, email string) (*PasswordResetResult, error)

	// ResetPassword replaces the password of the account with email if
	// token matches its pending, unexpired reset token. Any token problem
	// yields a domain.ValidationErrors on "email".
	ResetPassword(ctx context.Context, email, token, password string) error
}

// AuthServiceConfig holds the auth service's tunables.
type AuthServiceConfig struct {
	TokenLifetime      time.Duration
	ResetTokenLifetime time.Duration
	// ExposeResetToken returns reset tokens to the caller instead of
	// emitting a password_reset_requested event.
	ExposeResetToken bool
}

// AuthDeps groups the collaborators of the auth service.
type AuthDeps struct {
	DB         *sql.DB
	Users      store.UserStore
	Tokens     store.AuthTokenStore
	Resets     store.PasswordResetStore
	JWT        auth.JWTService
	Hasher     auth.PasswordHasher
	Verifier   auth.PasswordVerifier
	Events     events.EventEmitter
	Logger     *slog.Logger
	TimeSource func() time.Time
}

type authServiceImpl struct {
	AuthDeps
	cfg AuthServiceConfig
	// dummyHash is compared against when the email is unknown so that login
	// costs the same whether or not the account exists. It comes from Hasher
	// so it tracks the configured cost.
	dummyHash string
}

var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates an AuthService. It returns an error if a required
// dependency is missing.
func NewAuthService(deps AuthDeps, cfg AuthServiceConfig) (AuthService, error) {
	switch {
	case deps.DB == nil:
		return nil, errors.New("db cannot be nil")
	case deps.Users == nil:
		return nil, errors.New("user store cannot be nil")
	case deps.Tokens == nil:
		return nil, errors.New("auth token store cannot be nil")
	case deps.Resets == nil:
		return nil, errors.New("password reset store cannot be nil")
	case deps.JWT == nil:
		return nil, errors.New("jwt service cannot be nil")
	case deps.Hasher == nil || deps.Verifier == nil:
		return nil, errors.New("password hasher and verifier cannot be nil")
	case deps.Events == nil && !cfg.ExposeResetToken:
		return nil, errors.New("event emitter is required when reset tokens are not exposed")
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Logger = deps.Logger.With(slog.String("component", "auth_service"))
	if deps.TimeSource == nil {
		deps.TimeSource = domain.Now
	}

	dummyHash, err := deps.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy password hash: %w", err)
	}

	return &authServiceImpl{AuthDeps: deps, cfg: cfg, dummyHash: dummyHash}, nil
}

// normalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.Logger)
}

// issueToken records a token for userID with the given stores and signs it.
func (s *authServiceImpl) issueToken(
	ctx context.Context,
	tokens store.AuthTokenStore,
	userID uuid.UUID,
) (string, error) {
	record := domain.NewAuthToken(userID, s.cfg.TokenLifetime)
	record.IssuedAt = s.TimeSource()
	record.ExpiresAt = record.IssuedAt.Add(s.cfg.TokenLifetime)

	if err := tokens.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to record token: %w", err)
	}

	signed, err := s.JWT.GenerateToken(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Register implements AuthService.
func (s *authServiceImpl) Register(ctx context.Context, name, email, password string) (*AuthSession, error) {
	log := s.log(ctx)
	email = normalizeEmail(email)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "register", err)
	}

	user, err := domain.NewUser(strings.TrimSpace(name), email, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	var token string
	err = store.RunInTransaction(ctx, s.DB, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.Users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		token, err = s.issueToken(ctx, s.Tokens.WithTx(tx), user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration with existing email", slog.String("email", redact.Email(email)))
			return nil, domain.NewValidationError("email", MsgEmailTaken)
		}
		log.Error("failed to register user",
			slog.String("error", redact.Error(err)),
			slog.String("email", redact.Email(email)))
		return nil, NewServiceError("auth", "register", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return &AuthSession{Token: token, User: user}, nil
}

// Login implements AuthService.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	log := s.log(ctx)
	email = normalizeEmail(email)

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to load user for login", slog.String("error", redact.Error(err)))
			return nil, NewServiceError("auth", "login", err)
		}
		_ = s.Verifier.Compare(s.dummyHash, password)
		log.Debug("login for unknown email", slog.String("email", redact.Email(email)))
		return nil, ErrInvalidCredentials
	}

	if err := s.Verifier.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Error("failed to verify password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		log.Debug("login with wrong password", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, s.Tokens, user.ID)
	if err != nil {
		log.Error("failed to issue token",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("auth", "login", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &AuthSession{Token: token, User: user}, nil
}

// Logout implements AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	log := s.log(ctx)

	revoked, err := s.Tokens.RevokeAllForUser(ctx, userID, s.TimeSource())
	if err != nil {
		log.Error("failed to revoke tokens",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return NewServiceError("auth", "logout", err)
	}

	log.Info("user logged out",
		slog.String("user_id", userID.String()),
		slog.Int64("revoked_tokens", revoked))
	return nil
}

// Authenticate implements AuthService.
func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	log := s.log(ctx)

	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, auth.ErrMissingToken)
	}

	claims, err := s.JWT.ValidateToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	record, err := s.Tokens.GetByID(ctx, claims.TokenID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("token has no record", slog.String("token_id", claims.TokenID.String()))
			return nil, fmt.Errorf("%w: unknown token", ErrUnauthenticated)
		}
		log.Error("failed to load token record", slog.String("error", redact.Error(err)))
		return nil, NewServiceError("auth", "authenticate", err)
	}

	if record.UserID != claims.UserID {
		log.Warn("token subject does not match its record",
			slog.String("token_id", record.ID.String()))
		return nil, fmt.Errorf("%w: subject mismatch", ErrUnauthenticated)
	}

	if !record.Active(s.TimeSource()) {
		log.Debug("token revoked or expired", slog.String("token_id", record.ID.String()))
		return nil, fmt.Errorf("%w: token revoked or expired", ErrUnauthenticated)
	}

	user, err := s.Users.GetByID(ctx, record.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
		}
		log.Error("failed to load authenticated user", slog.String("error", redact.Error(err)))
		return nil, NewServiceError("auth", "authenticate", err)
	}

	return user, nil
}

// SendResetToken implements AuthService.
func (s *authServiceImpl) SendResetToken(ctx context.Context, email string) (*PasswordResetResult, error) {
	log := s.log(ctx)
	email = normalizeEmail(email)

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domain.NewValidationError("email", MsgNoAccountForEmail)
		}
		log.Error("failed to load user for password reset", slog.String("error", redact.Error(err)))
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	hash, err := s.Hasher.Hash(token)
	if err != nil {
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	reset := &domain.PasswordReset{Email: user.Email, TokenHash: hash, CreatedAt: s.TimeSource()}
	if err := s.Resets.Upsert(ctx, reset); err != nil {
		log.Error("failed to store password reset",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	if s.cfg.ExposeResetToken {
		log.Info("password reset token generated", slog.String("user_id", user.ID.String()))
		return &PasswordResetResult{Email: user.Email, Token: token}, nil
	}

	event, err := events.NewEvent(events.EventTypePasswordResetRequested, events.PasswordResetRequested{
		Email: user.Email,
		Name:  user.Name,
		Token: token,
	})
	if err != nil {
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	if err := s.Events.EmitEvent(ctx, event); err != nil {
		log.Error("failed to dispatch password reset token",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("auth", "send_reset_token", err)
	}

	log.Info("password reset token sent", slog.String("user_id", user.ID.String()))
	return &PasswordResetResult{Email: user.Email}, nil
}

// ResetPassword implements AuthService.
func (s *authServiceImpl) ResetPassword(ctx context.Context, email, token, password string) error {
	log := s.log(ctx)
	email = normalizeEmail(email)
	invalid := domain.NewValidationError("email", MsgInvalidResetToken)

	reset, err := s.Resets.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrPasswordResetNotFound) {
			return invalid
		}
		log.Error("failed to load password reset", slog.String("error", redact.Error(err)))
		return NewServiceError("auth", "reset_password", err)
	}

	if reset.Expired(s.TimeSource(), s.cfg.ResetTokenLifetime) {
		if err := s.Resets.DeleteByEmail(ctx, email); err != nil {
			log.Warn("failed to delete expired password reset", slog.String("error", redact.Error(err)))
		}
		log.Debug("expired password reset token", slog.String("email", redact.Email(email)))
		return invalid
	}

	if err := s.Verifier.Compare(reset.TokenHash, token); err != nil {
		log.Debug("password reset token mismatch", slog.String("email", redact.Email(email)))
		return invalid
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return NewServiceError("auth", "reset_password", err)
	}

	remember, err := auth.NewRememberToken()
	if err != nil {
		return NewServiceError("auth", "reset_password", err)
	}

	var userID uuid.UUID
	err = store.RunInTransaction(ctx, s.DB, func(ctx context.Context, tx *sql.Tx) error {
		users := s.Users.WithTx(tx)
		user, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		user.HashedPassword = hash
		user.RememberToken = remember
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		userID = user.ID
		return s.Resets.WithTx(tx).DeleteByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return invalid
		}
		log.Error("failed to reset password",
			slog.String("error", redact.Error(err)),
			slog.String("email", redact.Email(email)))
		return NewServiceError("auth", "reset_password", err)
	}

	log.Info("password reset", slog.String("user_id", userID.String()))
	return nil
}
