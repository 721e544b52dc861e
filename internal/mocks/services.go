package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a testify mock of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*service.AuthSession, error) {
	args := m.Called(ctx, name, email, password)
	session, _ := args.Get(0).(*service.AuthSession)
	return session, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthSession, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*service.AuthSession)
	return session, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockAuthService) SendResetToken(ctx context.Context, email string) (*service.PasswordResetResult, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*service.PasswordResetResult)
	return result, args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, token, password string) error {
	return m.Called(ctx, email, token, password).Error(0)
}

// MockTaskService is a testify mock of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) List(ctx context.Context, filter domain.TaskFilter, page domain.PageRequest) (*domain.Page[*domain.Task], error) {
	args := m.Called(ctx, filter, page)
	result, _ := args.Get(0).(*domain.Page[*domain.Task])
	return result, args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, title, description string, status domain.TaskStatus, dueDate domain.Date) (*domain.Task, error) {
	args := m.Called(ctx, title, description, status, dueDate)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
	args := m.Called(ctx, id, update)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCommentService is a testify mock of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) List(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	args := m.Called(ctx, taskID)
	comments, _ := args.Get(0).([]*domain.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, taskID uuid.UUID, content, authorName string) (*domain.Comment, error) {
	args := m.Called(ctx, taskID, content, authorName)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}
