package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

// getPathUUID parses a UUID path parameter. An id that is not a UUID cannot
// name an existing resource, so callers answer 404 when ok is false.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// nullRejecter is implemented by requests that reject explicit JSON nulls.
type nullRejecter interface {
	NullFieldErrors() domain.ValidationErrors
}

// decodeAndValidate decodes the JSON body into req and validates it. It
// writes the error response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}

	errs := domain.ValidationErrors{}
	if n, ok := req.(nullRejecter); ok {
		errs = n.NullFieldErrors()
	}
	if err := shared.ValidateRequest(req); err != nil {
		var fieldErrs domain.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			HandleAPIError(w, r, err, "")
			return false
		}
		for field, messages := range fieldErrs {
			for _, message := range messages {
				errs.Add(field, message)
			}
		}
	}
	if err := errs.Err(); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// parseTaskListQuery turns the list endpoint's query string into a filter
// and page request. Format errors are reported per field; range checks are
// left to the domain types.
func parseTaskListQuery(r *http.Request, defaultPerPage int) (domain.TaskFilter, domain.PageRequest, error) {
	q := r.URL.Query()
	raw := TaskListQuery{
		Status:      q.Get("status"),
		DueDate:     q.Get("due_date"),
		DueDateFrom: q.Get("due_date_from"),
		DueDateTo:   q.Get("due_date_to"),
		SortBy:      q.Get("sort_by"),
		SortOrder:   strings.ToLower(q.Get("sort_order")),
		PerPage:     q.Get("per_page"),
		Page:        q.Get("page"),
	}

	errs := domain.ValidationErrors{}
	if err := shared.ValidateRequest(&raw); err != nil {
		v := validationErrorsFrom(err)
		for field, msgs := range v {
			for _, msg := range msgs {
				errs.Add(field, msg)
			}
		}
	}

	page := domain.PageRequest{Page: 1, PerPage: defaultPerPage}
	if raw.PerPage != "" {
		n, err := strconv.Atoi(raw.PerPage)
		if err != nil {
			errs.Add("per_page", "The per page field must be an integer.")
		}
		page.PerPage = n
	}
	if raw.Page != "" {
		n, err := strconv.Atoi(raw.Page)
		if err != nil {
			errs.Add("page", "The page field must be an integer.")
		}
		page.Page = n
	}

	if err := errs.Err(); err != nil {
		return domain.TaskFilter{}, domain.PageRequest{}, err
	}

	filter := domain.TaskFilter{
		SortBy:    domain.SortField(raw.SortBy),
		SortOrder: domain.SortOrder(raw.SortOrder),
	}
	if raw.Status != "" {
		status := domain.TaskStatus(raw.Status)
		filter.Status = &status
	}
	for _, d := range []struct {
		raw string
		dst **domain.Date
	}{
		{raw.DueDate, &filter.DueDate},
		{raw.DueDateFrom, &filter.DueDateFrom},
		{raw.DueDateTo, &filter.DueDateTo},
	} {
		if d.raw == "" {
			continue
		}
		date, err := domain.ParseDate(d.raw)
		if err != nil {
			return domain.TaskFilter{}, domain.PageRequest{}, err
		}
		*d.dst = &date
	}

	return filter, page, nil
}
