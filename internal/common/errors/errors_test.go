package errors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeValidationFailed, CategoryValidation},
		{ErrCodeUnknownQuestion, CategoryValidation},
		{ErrCodeInvalidAnswerValue, CategoryValidation},
		{ErrCodeIncompleteAssessment, CategoryValidation},
		{ErrCodeUnknownLetterType, CategoryValidation},
		{ErrCodeAssessmentNotFound, CategoryNotFound},
		{ErrCodeCertificateNotFound, CategoryNotFound},
		{ErrCodeAssessmentSubmitFailed, CategoryPersistence},
		{ErrCodeDatabaseConnectionFailed, CategoryPersistence},
		{ErrCodeQueryExecutionFailed, CategoryPersistence},
		{ErrCodeSearchQueryFailed, CategorySearch},
		{ErrCodeIndexNotFound, CategorySearch},
		{ErrCodeNotificationSendFailed, CategoryNotification},
		{ErrCodeInternal, CategoryOther},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCategory(tt.code))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeUnknownLetterType))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrCodeAssessmentNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrCodeCertificateNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrCodeAssessmentSubmitFailed))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(ErrCodeIndexNotFound))
}

func TestConvertToBPMNError(t *testing.T) {
	t.Run("validation errors are never retried", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewUnknownLetterTypeError("poem"))
		assert.Equal(t, "UNKNOWN_LETTER_TYPE", bpmn.Code)
		assert.Equal(t, 0, bpmn.Retries)
		assert.False(t, bpmn.Retryable)
		assert.Equal(t, CategoryValidation, bpmn.ErrorVariables["errorCategory"])
	})

	t.Run("query failures are retried", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewQueryExecutionFailedError("list_questions", fmt.Errorf("conn reset")))
		assert.Equal(t, 3, bpmn.Retries)
		assert.True(t, bpmn.Retryable)
	})

	t.Run("submit failures surface without retry", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewAssessmentSubmitFailedError(fmt.Errorf("tx aborted")))
		assert.Equal(t, 0, bpmn.Retries)
		vars := bpmn.ToErrorVariables()
		assert.Equal(t, "ASSESSMENT_SUBMIT_FAILED", vars["errorCode"])
	})
}

func TestNewQueryError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    ErrorCode
		retries int
	}{
		{"deadline", fmt.Errorf("list: %w", context.DeadlineExceeded), ErrCodeQueryTimeout, 2},
		{"bad connection", fmt.Errorf("list: %w", driver.ErrBadConn), ErrCodeDatabaseConnectionFailed, 3},
		{"connection done", sql.ErrConnDone, ErrCodeDatabaseConnectionFailed, 3},
		{"syntax", stderrors.New("syntax error at or near"), ErrCodeQueryExecutionFailed, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQueryError("list_questions", tt.err)
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, tt.retries, GetRetryCount(got.Code))
			assert.Equal(t, http.StatusInternalServerError, HTTPStatus(got.Code))
		})
	}
}

func TestNormalize(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewAssessmentNotFoundError("a-1"))
	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeAssessmentNotFound, stdErr.Code)

	plain := Normalize(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "boom", plain.Details)
}

func TestUserMessage(t *testing.T) {
	t.Run("localized", func(t *testing.T) {
		assert.Equal(t, userMessages["fr"][CategoryNotFound], UserMessage(ErrCodeAssessmentNotFound, "fr"))
	})
	t.Run("unknown locale falls back to english", func(t *testing.T) {
		assert.Equal(t, userMessages["en"][CategoryPersistence], UserMessage(ErrCodeAssessmentSubmitFailed, "xx"))
	})
	t.Run("never leaks details", func(t *testing.T) {
		err := NewAssessmentSubmitFailedError(fmt.Errorf("pq: duplicate key value violates unique constraint"))
		assert.NotContains(t, UserMessage(err.Code, "en"), "pq:")
	})
}
