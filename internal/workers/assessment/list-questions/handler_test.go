// internal/workers/assessment/list-questions/handler_test.go
package listquestions

import (
	"context"
	"errors"
	"testing"

	apperrors "hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	questions []models.Question
	err       error
}

func (s stubLister) Questions(ctx context.Context) ([]models.Question, error) {
	return s.questions, s.err
}

func TestExecute(t *testing.T) {
	h := NewHandler(LoadConfig(), stubLister{questions: []models.Question{
		{ID: "q01", Order: 1, Text: "one", Active: true},
		{ID: "q02", Order: 2, Text: "two", Active: true},
	}}, logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.QuestionCount)
	assert.Equal(t, 6, out.MaxScore)
	assert.Equal(t, "q01", out.Questions[0].ID)
}

func TestExecute_Error(t *testing.T) {
	h := NewHandler(LoadConfig(), stubLister{
		err: apperrors.NewQueryExecutionFailedError("list_questions", errors.New("db down")),
	}, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{})
	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.True(t, apperrors.IsRetryableErrorCode(stdErr.Code))
}

func TestSchemas(t *testing.T) {
	assert.Equal(t, "object", GetInputSchema().Type)
	assert.Contains(t, GetOutputSchema().Required, "questions")
}
