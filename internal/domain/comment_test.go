package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Parallel()

	taskID := uuid.New()
	comment, err := NewComment(taskID, "Looks good", "Grace")
	require.NoError(t, err)
	assert.Equal(t, taskID, comment.TaskID)
	assert.NotEqual(t, uuid.Nil, comment.ID)

	_, err = NewComment(uuid.Nil, "x", "y")
	assert.Equal(t, ErrEmptyCommentTaskID, err)

	_, err = NewComment(taskID, "", "y")
	assert.Equal(t, ErrEmptyCommentContent, err)

	_, err = NewComment(taskID, "x", "")
	assert.Equal(t, ErrEmptyCommentAuthor, err)
}
