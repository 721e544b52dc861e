package api

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/service"
)

// CommentHandler handles the comments nested under a task.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments handles GET /v1/tasks/{task_id}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, ok := getPathUUID(r, "task_id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return
	}

	comments, err := h.commentService.List(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve comments")
		return
	}

	items := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, commentToResponse(c))
	}
	shared.RespondSuccess(w, r, http.StatusOK, "Comments retrieved successfully", items)
}

// CreateComment handles POST /v1/tasks/{task_id}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := getPathUUID(r, "task_id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgTaskNotFound)
		return
	}

	var req CreateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.commentService.Create(r.Context(), taskID, req.Content, req.AuthorName)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	shared.RespondSuccess(w, r, http.StatusCreated, "Comment created successfully", commentToResponse(comment))
}
