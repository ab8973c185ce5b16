// Package errors provides the error catalogue shared by the HTTP API and the
// Zeebe job workers: stable codes, retry policy, BPMN conversion and the
// generic user-facing wording for each category.
package errors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

// Validation
const (
	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnknownQuestion      ErrorCode = "UNKNOWN_QUESTION"
	ErrCodeInvalidAnswerValue   ErrorCode = "INVALID_ANSWER_VALUE"
	ErrCodeIncompleteAssessment ErrorCode = "INCOMPLETE_ASSESSMENT"
	ErrCodeUnknownLetterType    ErrorCode = "UNKNOWN_LETTER_TYPE"
)

// Not found
const (
	ErrCodeAssessmentNotFound  ErrorCode = "ASSESSMENT_NOT_FOUND"
	ErrCodeCertificateNotFound ErrorCode = "CERTIFICATE_NOT_FOUND"
	ErrCodeResourceNotFound    ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeIndexNotFound       ErrorCode = "INDEX_NOT_FOUND"
)

// Persistence and infrastructure
const (
	ErrCodeAssessmentSubmitFailed        ErrorCode = "ASSESSMENT_SUBMIT_FAILED"
	ErrCodeDatabaseConnectionFailed      ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed          ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout                  ErrorCode = "QUERY_TIMEOUT"
	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
	ErrCodeSearchQueryFailed             ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeNotificationSendFailed        ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeTimeout                       ErrorCode = "TIMEOUT_ERROR"
	ErrCodeBusinessRule                  ErrorCode = "BUSINESS_RULE_VIOLATION"
	ErrCodeInternal                      ErrorCode = "INTERNAL_ERROR"
)

// Categories returned by GetErrorCategory.
const (
	CategoryValidation   = "VALIDATION"
	CategoryNotFound     = "NOT_FOUND"
	CategoryPersistence  = "PERSISTENCE"
	CategorySearch       = "SEARCH"
	CategoryNotification = "NOTIFICATION"
	CategoryOther        = "OTHER"
)

// StandardError is a structured application error. Message is safe to show
// to end users; Details is for logs only.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// BPMNError is the shape thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns the variables attached to a failed or thrown job.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func NewValidationError(details string) *StandardError {
	return newError(ErrCodeValidationFailed, "Request validation failed", details, false)
}

func NewUnknownQuestionError(questionID string) *StandardError {
	return newError(ErrCodeUnknownQuestion, "Answer refers to an unknown question",
		fmt.Sprintf("questionId: %s", questionID), false).
		WithMetadata("questionId", questionID)
}

func NewInvalidAnswerValueError(questionID string, value int) *StandardError {
	return newError(ErrCodeInvalidAnswerValue, "Answer value is out of range",
		fmt.Sprintf("questionId: %s, value: %d", questionID, value), false).
		WithMetadata("questionId", questionID)
}

func NewIncompleteAssessmentError(details string) *StandardError {
	return newError(ErrCodeIncompleteAssessment, "Every question must be answered exactly once", details, false)
}

func NewUnknownLetterTypeError(letterType string) *StandardError {
	return newError(ErrCodeUnknownLetterType, "Unsupported letter type",
		fmt.Sprintf("letterType: %s", letterType), false)
}

func NewAssessmentNotFoundError(assessmentID string) *StandardError {
	return newError(ErrCodeAssessmentNotFound, "Assessment not found",
		fmt.Sprintf("assessmentId: %s", assessmentID), false)
}

func NewCertificateNotFoundError(certificateID string) *StandardError {
	return newError(ErrCodeCertificateNotFound, "Certificate not found",
		fmt.Sprintf("certificateId: %s", certificateID), false)
}

func NewIndexNotFoundError(indexName string) *StandardError {
	return newError(ErrCodeIndexNotFound, "Search index not found",
		fmt.Sprintf("indexName: %s", indexName), false)
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return newError(ErrCodeResourceNotFound, fmt.Sprintf("Resource not found in %s", service), details, false)
}

// NewAssessmentSubmitFailedError wraps any failure while persisting an
// assessment. It is not retried automatically.
func NewAssessmentSubmitFailedError(err error) *StandardError {
	return newError(ErrCodeAssessmentSubmitFailed, "Failed to submit assessment", err.Error(), false)
}

func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return newError(ErrCodeQueryExecutionFailed, "Database query execution error",
		fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()), true)
}

func NewQueryTimeoutError(queryType string) *StandardError {
	return newError(ErrCodeQueryTimeout, "Database query timeout",
		fmt.Sprintf("queryType: %s", queryType), true)
}

// NewQueryError classifies a failed database call: deadline exceeded becomes
// QUERY_TIMEOUT, a lost connection DATABASE_CONNECTION_FAILED, anything else
// QUERY_EXECUTION_FAILED.
func NewQueryError(queryType string, err error) *StandardError {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return NewQueryTimeoutError(queryType)
	case stderrors.Is(err, driver.ErrBadConn), stderrors.Is(err, sql.ErrConnDone):
		return NewDatabaseConnectionFailedError(err)
	default:
		return NewQueryExecutionFailedError(queryType, err)
	}
}

func NewElasticsearchConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeElasticsearchConnectionFailed, "Search service connection error", err.Error(), true)
}

func NewSearchQueryFailedError(queryType string, err error) *StandardError {
	return newError(ErrCodeSearchQueryFailed, "Search query error",
		fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()), true)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Notification delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewBusinessRuleError(message, details string) *StandardError {
	return newError(ErrCodeBusinessRule, message, details, false)
}

// NewInternalError is the fallback for errors outside the catalogue.
func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// AsStandardError unwraps err to a *StandardError if one is in its chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// Normalize always returns a StandardError, wrapping unknown errors as
// INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return NewInternalError(err)
}

// GetRetryCount returns how many times the workflow engine should retry a
// job that failed with code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeElasticsearchConnectionFailed,
		ErrCodeSearchQueryFailed,
		ErrCodeNotificationSendFailed:
		return 3
	case ErrCodeQueryTimeout, ErrCodeTimeout:
		return 2
	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError for the workflow engine. The
// BPMN code is the internal code.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}
	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"errorCategory": GetErrorCategory(stdErr.Code),
			"timestamp":     stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// IsRetryableErrorCode reports whether code is retried by the engine.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory groups codes into the validation / not-found /
// persistence taxonomy.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeValidationFailed, ErrCodeUnknownQuestion, ErrCodeInvalidAnswerValue,
		ErrCodeIncompleteAssessment, ErrCodeUnknownLetterType, ErrCodeBusinessRule:
		return CategoryValidation
	case ErrCodeAssessmentNotFound, ErrCodeCertificateNotFound, ErrCodeResourceNotFound:
		return CategoryNotFound
	}

	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "ELASTICSEARCH") || strings.Contains(codeStr, "SEARCH") ||
		strings.Contains(codeStr, "INDEX"):
		return CategorySearch
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") ||
		strings.Contains(codeStr, "SUBMIT"):
		return CategoryPersistence
	case strings.Contains(codeStr, "NOTIFICATION"):
		return CategoryNotification
	default:
		return CategoryOther
	}
}

// HTTPStatus maps a code to the status returned by the HTTP API.
func HTTPStatus(code ErrorCode) int {
	switch GetErrorCategory(code) {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	}
	if code == ErrCodeIndexNotFound {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
