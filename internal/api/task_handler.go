package api

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskHandler handles task CRUD requests.
type TaskHandler struct {
	taskService    service.TaskService
	defaultPerPage int
}

// NewTaskHandler creates a TaskHandler. defaultPerPage is the page size used
// when a list request does not give one.
func NewTaskHandler(taskService service.TaskService, defaultPerPage int) *TaskHandler {
	return &TaskHandler{taskService: taskService, defaultPerPage: defaultPerPage}
}

// ListTasks handles GET /v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseTaskListQuery(r, h.defaultPerPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.taskService.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Tasks retrieved successfully", pageToResponse(result))
}

// CreateTask handles POST /v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dueDate, err := domain.ParseDate(req.DueDate)
	if err != nil {
		shared.RespondValidationErrors(w, r,
			domain.NewValidationError("due_date", "The due date field must match the format Y-m-d."))
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title, req.Description, domain.TaskStatus(req.Status), dueDate)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondSuccess(w, r, http.StatusCreated, "Task created successfully", taskToResponse(task))
}

// GetTask handles GET /v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Task retrieved successfully", taskToResponse(task))
}

// UpdateTask handles PUT and PATCH /v1/tasks/{id}. Both are partial.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := domain.TaskUpdate{Title: req.Title, Description: req.Description}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.DueDate != nil {
		dueDate, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			shared.RespondValidationErrors(w, r,
				domain.NewValidationError("due_date", "The due date field must match the format Y-m-d."))
			return
		}
		update.DueDate = &dueDate
	}

	task, err := h.taskService.Update(r.Context(), id, update)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Task updated successfully", taskToResponse(task))
}

// DeleteTask handles DELETE /v1/tasks/{id}. A successful delete answers 200
// with an acknowledgment and no data.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Task deleted successfully", nil)
}
