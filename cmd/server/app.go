package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/mail"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/service/auth"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore          store.UserStore
	taskStore          store.TaskStore
	commentStore       store.CommentStore
	authTokenStore     store.AuthTokenStore
	passwordResetStore store.PasswordResetStore

	jwtService     auth.JWTService
	hasher         *auth.BcryptHasher
	authService    service.AuthService
	taskService    service.TaskService
	commentService service.CommentService

	eventEmitter *events.InMemoryEventEmitter
}

// newApplication wires stores, services and the event system on top of an
// open, migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.authTokenStore = postgres.NewPostgresAuthTokenStore(db, logger)
	app.passwordResetStore = postgres.NewPostgresPasswordResetStore(db, logger)

	notifier, err := mail.NewNotifier(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail notifier: %w", err)
	}
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(mail.NewPasswordResetHandler(notifier, cfg.Auth.ResetTokenLifetime()))
	logger.Info("mail notifier initialized", "driver", cfg.Mail.Driver)

	app.authService, err = service.NewAuthService(service.AuthDeps{
		DB:       db,
		Users:    app.userStore,
		Tokens:   app.authTokenStore,
		Resets:   app.passwordResetStore,
		JWT:      app.jwtService,
		Hasher:   app.hasher,
		Verifier: app.hasher,
		Events:   app.eventEmitter,
		Logger:   logger,
	}, service.AuthServiceConfig{
		TokenLifetime:      cfg.Auth.TokenLifetime(),
		ResetTokenLifetime: cfg.Auth.ResetTokenLifetime(),
		ExposeResetToken:   cfg.Auth.ExposeResetToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if cfg.Auth.ExposeResetToken {
		logger.Warn("password reset tokens are returned in API responses")
	}

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.commentService, err = service.NewCommentService(app.taskStore, app.commentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// cleanup releases the resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
