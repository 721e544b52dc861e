package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required,max=255"`
	Email                string `json:"email"                 validate:"required,email,max=255"`
	Password             string `json:"password"              validate:"required,min=6,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest defines the payload for requesting a reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest defines the payload for resetting a password.
type ResetPasswordRequest struct {
	Token                string `json:"token"                 validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ResetTokenResponse carries a reset token when tokens are exposed.
type ResetTokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"      validate:"required,oneof=pending in-progress completed"`
	DueDate     string `json:"due_date"    validate:"required,datetime=2006-01-02"`
}

// UpdateTaskRequest defines a partial task update. Absent fields are left
// unchanged; a field sent as null is rejected.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,min=1"`
	Status      *string `json:"status"      validate:"omitnil,oneof=pending in-progress completed"`
	DueDate     *string `json:"due_date"    validate:"omitnil,datetime=2006-01-02"`

	nullFields []string
}

var updateTaskFields = []string{"title", "description", "status", "due_date"}

// UnmarshalJSON decodes the update and records which fields were explicitly
// null, since a nil pointer alone cannot tell null from absent.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateTaskRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.nullFields = nil
	for _, field := range updateTaskFields {
		if value, ok := raw[field]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			r.nullFields = append(r.nullFields, field)
		}
	}
	return nil
}

// NullFieldErrors reports each field that was sent as null.
func (r *UpdateTaskRequest) NullFieldErrors() domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	for _, field := range r.nullFields {
		errs.Add(field, fmt.Sprintf("The %s field must be a string.", strings.ReplaceAll(field, "_", " ")))
	}
	return errs
}

// TaskListQuery holds the raw query parameters of the task list endpoint.
type TaskListQuery struct {
	Status      string `json:"status"        validate:"omitempty,oneof=pending in-progress completed"`
	DueDate     string `json:"due_date"      validate:"omitempty,datetime=2006-01-02"`
	DueDateFrom string `json:"due_date_from" validate:"omitempty,datetime=2006-01-02"`
	DueDateTo   string `json:"due_date_to"   validate:"omitempty,datetime=2006-01-02"`
	SortBy      string `json:"sort_by"       validate:"omitempty,oneof=due_date created_at"`
	SortOrder   string `json:"sort_order"    validate:"omitempty,oneof=asc desc"`
	PerPage     string `json:"per_page"`
	Page        string `json:"page"`
}

// TaskResponse is the public representation of a task.
type TaskResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	DueDate     domain.Date `json:"due_date"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PaginationResponse describes the position of a page in a result set.
type PaginationResponse struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
}

// TaskListResponse is one page of tasks.
type TaskListResponse struct {
	Items      []TaskResponse     `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// CreateCommentRequest defines the payload for commenting on a task.
type CreateCommentRequest struct {
	Content    string `json:"content"     validate:"required"`
	AuthorName string `json:"author_name" validate:"required,max=255"`
}

// CommentResponse is the public representation of a comment.
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	TaskID     uuid.UUID `json:"task_id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func pageToResponse(p *domain.Page[*domain.Task]) TaskListResponse {
	items := make([]TaskResponse, 0, len(p.Items))
	for _, t := range p.Items {
		items = append(items, taskToResponse(t))
	}
	return TaskListResponse{
		Items: items,
		Pagination: PaginationResponse{
			CurrentPage: p.Page,
			PerPage:     p.PerPage,
			Total:       p.Total,
			TotalPages:  p.TotalPages(),
		},
	}
}

func commentToResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		TaskID:     c.TaskID,
		Content:    c.Content,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
