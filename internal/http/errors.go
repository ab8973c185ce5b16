package httpapi

import (
	"net/http"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
)

// writeError maps err to its HTTP status and a localised message. Details
// are logged and never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error, log logger.Logger) {
	stdErr := errors.Normalize(err)
	status := errors.HTTPStatus(stdErr.Code)

	fields := map[string]interface{}{
		"path":    r.URL.Path,
		"method":  r.Method,
		"code":    stdErr.Code,
		"status":  status,
		"details": stdErr.Details,
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields)
	} else {
		log.Warn("request rejected", fields)
	}

	body := ErrorResult{ErrorCode: string(stdErr.Code)}
	if f, ok := stdErr.Metadata["fields"].([]string); ok {
		body.Fields = f
	}
	writeJSON(w, status, Fail(errors.UserMessage(stdErr.Code, LocaleFromContext(r.Context())), body))
}
