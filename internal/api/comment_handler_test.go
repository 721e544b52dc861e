package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/mocks"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const commentsPattern = "/tasks/{task_id}/comments"

func newCommentHandlerWithMock(t *testing.T) (*CommentHandler, *mocks.MockCommentService) {
	t.Helper()
	svc := &mocks.MockCommentService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return NewCommentHandler(svc), svc
}

func TestListComments(t *testing.T) {
	t.Run("lists comments", func(t *testing.T) {
		h, svc := newCommentHandlerWithMock(t)
		taskID := uuid.New()
		first, err := domain.NewComment(taskID, "first", "Ann")
		require.NoError(t, err)
		second, err := domain.NewComment(taskID, "second", "Bob")
		require.NoError(t, err)
		svc.On("List", mock.Anything, taskID).Return([]*domain.Comment{first, second}, nil)

		rec := serve(t, commentsPattern, h.ListComments, http.MethodGet, "/tasks/"+taskID.String()+"/comments", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var items []CommentResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
		require.Len(t, items, 2)
		assert.Equal(t, "first", items[0].Content)
		assert.Equal(t, taskID, items[1].TaskID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		h, svc := newCommentHandlerWithMock(t)
		taskID := uuid.New()
		svc.On("List", mock.Anything, taskID).Return(nil, nil)

		rec := serve(t, commentsPattern, h.ListComments, http.MethodGet, "/tasks/"+taskID.String()+"/comments", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("missing task", func(t *testing.T) {
		h, svc := newCommentHandlerWithMock(t)
		taskID := uuid.New()
		svc.On("List", mock.Anything, taskID).Return(nil, store.ErrTaskNotFound)

		rec := serve(t, commentsPattern, h.ListComments, http.MethodGet, "/tasks/"+taskID.String()+"/comments", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, MsgTaskNotFound, decodeEnvelope(t, rec).Message)
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, svc := newCommentHandlerWithMock(t)
		taskID := uuid.New()
		comment, err := domain.NewComment(taskID, "Looks good", "Reviewer")
		require.NoError(t, err)
		svc.On("Create", mock.Anything, taskID, "Looks good", "Reviewer").Return(comment, nil)

		rec := serve(t, commentsPattern, h.CreateComment, http.MethodPost, "/tasks/"+taskID.String()+"/comments",
			`{"content":"Looks good","author_name":"Reviewer"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, `"Reviewer"`, extractJSON(t, decodeEnvelope(t, rec).Data, "author_name"))
	})

	t.Run("validation", func(t *testing.T) {
		h, _ := newCommentHandlerWithMock(t)

		rec := serve(t, commentsPattern, h.CreateComment, http.MethodPost, "/tasks/"+uuid.NewString()+"/comments", `{}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, []string{"The content field is required."}, env.Errors["content"])
		assert.Equal(t, []string{"The author name field is required."}, env.Errors["author_name"])
	})

	t.Run("malformed task id", func(t *testing.T) {
		h, _ := newCommentHandlerWithMock(t)

		rec := serve(t, commentsPattern, h.CreateComment, http.MethodPost, "/tasks/abc/comments",
			`{"content":"x","author_name":"y"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
