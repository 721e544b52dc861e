package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskService manages tasks.
type TaskService interface {
	// List returns one page of tasks matching filter. Invalid filter or page
	// parameters yield a domain.ValidationErrors.
	List(ctx context.Context, filter domain.TaskFilter, page domain.PageRequest) (*domain.Page[*domain.Task], error)

	// Create validates and stores a new task.
	Create(ctx context.Context, title, description string, status domain.TaskStatus, dueDate domain.Date) (*domain.Task, error)

	// Get returns the task with id or store.ErrTaskNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies a partial update and returns the resulting task.
	Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes the task and its comments.
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a TaskService backed by tasks.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// wrapTaskError passes sentinel store and validation errors through for the
// API layer and wraps everything else.
func wrapTaskError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound), errors.Is(err, domain.ErrValidation):
		return err
	case errors.Is(err, store.ErrInvalidEntity):
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	default:
		return NewServiceError("task", op, err)
	}
}

// List implements TaskService.
func (s *taskServiceImpl) List(
	ctx context.Context,
	filter domain.TaskFilter,
	page domain.PageRequest,
) (*domain.Page[*domain.Task], error) {
	errs := domain.ValidationErrors{}
	for _, err := range []error{filter.Validate(), page.Validate()} {
		var v domain.ValidationErrors
		if errors.As(err, &v) {
			for field, msgs := range v {
				for _, msg := range msgs {
					errs.Add(field, msg)
				}
			}
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	tasks, total, err := s.tasks.List(ctx, filter, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", redact.Error(err)))
		return nil, wrapTaskError("list", err)
	}

	return &domain.Page[*domain.Task]{
		Items:   tasks,
		Total:   total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}, nil
}

// Create implements TaskService.
func (s *taskServiceImpl) Create(
	ctx context.Context,
	title, description string,
	status domain.TaskStatus,
	dueDate domain.Date,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description, status, dueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, wrapTaskError("create", err)
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	return task, nil
}

// Get implements TaskService.
func (s *taskServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", id.String()))
		}
		return nil, wrapTaskError("get", err)
	}
	return task, nil
}

// Update implements TaskService.
func (s *taskServiceImpl) Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, wrapTaskError("update", err)
	}

	if update.IsEmpty() {
		return task, nil
	}

	if err := task.Apply(update); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to update task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", id.String()))
		}
		return nil, wrapTaskError("update", err)
	}

	log.Info("task updated", slog.String("task_id", id.String()))
	return task, nil
}

// Delete implements TaskService.
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to delete task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", id.String()))
		}
		return wrapTaskError("delete", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}
