package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name                 string  `json:"name"                  validate:"required,max=255"`
	Email                string  `json:"email"                 validate:"required,email"`
	Password             string  `json:"password"              validate:"required,min=6,eqfield=PasswordConfirmation"`
	PasswordConfirmation string  `json:"password_confirmation"`
	Status               string  `json:"status"                validate:"omitempty,oneof=pending completed"`
	DueDate              *string `json:"due_date"              validate:"omitnil,datetime=2006-01-02"`
	Title                *string `json:"title"                 validate:"omitnil,min=1,max=5"`
	Age                  int     `json:"age"                   validate:"omitempty,min=18"`
}

func newJSONRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var req signupRequest
		require.NoError(t, DecodeJSON(newJSONRequest(`{"name":"Jane","due_date":null}`), &req))
		assert.Equal(t, "Jane", req.Name)
		assert.Nil(t, req.DueDate)
	})

	t.Run("empty body decodes to zero value", func(t *testing.T) {
		var req signupRequest
		assert.NoError(t, DecodeJSON(newJSONRequest(""), &req))
	})

	t.Run("malformed", func(t *testing.T) {
		var req signupRequest
		err := DecodeJSON(newJSONRequest(`{"name":`), &req)
		assert.ErrorIs(t, err, ErrInvalidBody)
	})

	t.Run("wrong type becomes field error", func(t *testing.T) {
		tests := []struct {
			body  string
			field string
			msg   string
		}{
			{`{"name": 42}`, "name", "The name field must be a string."},
			{`{"age": "old"}`, "age", "The age field must be an integer."},
			{`{"title": true}`, "title", "The title field must be a string."},
		}
		for _, tt := range tests {
			var req signupRequest
			err := DecodeJSON(newJSONRequest(tt.body), &req)

			var v domain.ValidationErrors
			require.True(t, errors.As(err, &v), "body %s: %v", tt.body, err)
			assert.Equal(t, []string{tt.msg}, v[tt.field])
		}
	})
}

func TestValidateRequest(t *testing.T) {
	valid := func() signupRequest {
		return signupRequest{
			Name:                 "Jane",
			Email:                "jane@example.com",
			Password:             "secret",
			PasswordConfirmation: "secret",
		}
	}
	str := func(s string) *string { return &s }

	tests := []struct {
		name   string
		mutate func(r *signupRequest)
		want   map[string][]string
	}{
		{"valid", func(*signupRequest) {}, nil},
		{"required", func(r *signupRequest) { r.Name = ""; r.Email = "" }, map[string][]string{
			"name":  {"The name field is required."},
			"email": {"The email field is required."},
		}},
		{"too long", func(r *signupRequest) { r.Name = strings.Repeat("a", 256) }, map[string][]string{
			"name": {"The name field must not be greater than 255 characters."},
		}},
		{"bad email", func(r *signupRequest) { r.Email = "nope" }, map[string][]string{
			"email": {"The email field must be a valid email address."},
		}},
		{"short password", func(r *signupRequest) { r.Password = "abc"; r.PasswordConfirmation = "abc" }, map[string][]string{
			"password": {"The password field must be at least 6 characters."},
		}},
		{"confirmation mismatch", func(r *signupRequest) { r.PasswordConfirmation = "other1" }, map[string][]string{
			"password": {"The password field confirmation does not match."},
		}},
		{"enum", func(r *signupRequest) { r.Status = "archived" }, map[string][]string{
			"status": {"The selected status is invalid."},
		}},
		{"date format", func(r *signupRequest) { r.DueDate = str("01/02/2024") }, map[string][]string{
			"due_date": {"The due date field must match the format Y-m-d."},
		}},
		{"present but empty", func(r *signupRequest) { r.Title = str("") }, map[string][]string{
			"title": {"The title field is required."},
		}},
		{"numeric min", func(r *signupRequest) { r.Age = 3 }, map[string][]string{
			"age": {"The age field must be at least 18."},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := ValidateRequest(&req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)
			var v domain.ValidationErrors
			require.ErrorAs(t, err, &v)
			assert.Equal(t, domain.ValidationErrors(tt.want), v)
		})
	}
}

func TestValidateRequest_NotAStruct(t *testing.T) {
	err := ValidateRequest("nope")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
