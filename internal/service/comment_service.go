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

// CommentService manages the comments nested under a task.
type CommentService interface {
	// List returns the comments of the task, oldest first.
	// Returns store.ErrTaskNotFound if the task does not exist.
	List(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)

	// Create adds a comment to the task.
	// Returns store.ErrTaskNotFound if the task does not exist.
	Create(ctx context.Context, taskID uuid.UUID, content, authorName string) (*domain.Comment, error)
}

type commentServiceImpl struct {
	tasks    store.TaskStore
	comments store.CommentStore
	logger   *slog.Logger
}

var _ CommentService = (*commentServiceImpl)(nil)

// NewCommentService creates a CommentService.
func NewCommentService(tasks store.TaskStore, comments store.CommentStore, logger *slog.Logger) (CommentService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if comments == nil {
		return nil, errors.New("comment store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		tasks:    tasks,
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

func (s *commentServiceImpl) ensureTask(ctx context.Context, op string, taskID uuid.UUID) error {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load parent task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID.String()))
		return NewServiceError("comment", op, err)
	}
	return nil
}

// List implements CommentService.
func (s *commentServiceImpl) List(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if err := s.ensureTask(ctx, "list", taskID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list comments",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID.String()))
		return nil, NewServiceError("comment", "list", err)
	}
	return comments, nil
}

// Create implements CommentService.
func (s *commentServiceImpl) Create(
	ctx context.Context,
	taskID uuid.UUID,
	content, authorName string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.ensureTask(ctx, "create", taskID); err != nil {
		return nil, err
	}

	comment, err := domain.NewComment(taskID, content, authorName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		// The task can be deleted between the check and the insert.
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		log.Error("failed to create comment",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID.String()))
		return nil, NewServiceError("comment", "create", err)
	}

	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("task_id", taskID.String()))
	return comment, nil
}
