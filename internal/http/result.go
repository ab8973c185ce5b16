package httpapi

// Result is the envelope every API response uses.
//   - code: ResultSuccess (2000) or ResultError (-1)
//   - type: "success" | "error"
//   - message: human-readable, localised for errors
//   - result: payload, or ErrorResult on failure
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultError   = -1
)

// ErrorResult carries the machine-readable error code and, for schema
// failures, the offending fields.
type ErrorResult struct {
	ErrorCode string   `json:"errorCode"`
	Fields    []string `json:"fields,omitempty"`
}

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

func Fail(message string, result ErrorResult) Result[ErrorResult] {
	return Result[ErrorResult]{Code: ResultError, Type: "error", Message: message, Result: result}
}
