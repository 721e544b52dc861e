package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/service/auth"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing messages.
const (
	MsgUnauthenticated    = "Unauthenticated."
	MsgInvalidCredentials = "Invalid credentials"
	MsgTaskNotFound       = "Task not found"
	MsgInvalidBody        = "Invalid request body."
	MsgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error itself.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, shared.ErrInvalidBody):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. fallback is
// used for unexpected errors so each operation can report its own generic
// failure.
func GetSafeErrorMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = MsgUnexpected
	}
	if err == nil {
		return fallback
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return shared.MsgValidationFailed
	case errors.Is(err, shared.ErrInvalidBody):
		return MsgInvalidBody
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return MsgUnauthenticated
	case errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	default:
		return fallback
	}
}

// entityFieldErrors maps domain entity validation failures to the request
// field they concern.
var entityFieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrEmptyUserName, "name", "The name field is required."},
	{domain.ErrUserNameTooLong, "name", "The name field must not be greater than 255 characters."},
	{domain.ErrEmptyEmail, "email", "The email field is required."},
	{domain.ErrInvalidEmail, "email", "The email field must be a valid email address."},
	{domain.ErrEmptyTaskTitle, "title", "The title field is required."},
	{domain.ErrTaskTitleTooLong, "title", "The title field must not be greater than 255 characters."},
	{domain.ErrInvalidTaskStatus, "status", "The selected status is invalid."},
	{domain.ErrEmptyTaskDueDate, "due_date", "The due date field is required."},
	{domain.ErrEmptyCommentContent, "content", "The content field is required."},
	{domain.ErrEmptyCommentAuthor, "author_name", "The author name field is required."},
	{domain.ErrCommentAuthorTooLong, "author_name", "The author name field must not be greater than 255 characters."},
}

// validationErrorsFrom extracts field errors from a validation failure.
func validationErrorsFrom(err error) domain.ValidationErrors {
	var v domain.ValidationErrors
	if errors.As(err, &v) {
		return v
	}
	for _, e := range entityFieldErrors {
		if errors.Is(err, e.err) {
			return domain.NewValidationError(e.field, e.message)
		}
	}
	return domain.NewValidationError("request", "The given data was invalid.")
}

// HandleAPIError writes the response for err: a 422 envelope for validation
// failures, otherwise the mapped status with a safe message. fallback is the
// message used for unexpected errors. opts apply to the logged failure.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string, opts ...shared.ResponseOption) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusUnprocessableEntity {
		shared.RespondValidationErrors(w, r, validationErrorsFrom(err), opts...)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err, fallback), err, opts...)
}
