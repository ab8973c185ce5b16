package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(r *http.Request, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxBytes)
	}
	return body, nil
}

// readBodyJSON reads at most maxBytes, validates the document against v and
// decodes it into out. Every failure is a validation error.
func readBodyJSON(r *http.Request, maxBytes int64, v *validation.Validator, out any) error {
	body, err := readBody(r, maxBytes)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return errors.NewValidationError("request body is empty")
	}

	if v != nil {
		result := v.ValidateJSON(body)
		if !result.Valid {
			fields := make([]string, 0, len(result.Errors))
			for _, e := range result.Errors {
				fields = append(fields, e.Field)
			}
			return errors.NewValidationError(strings.Join(result.GetErrorMessages(), "; ")).
				WithMetadata("fields", fields)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewValidationError("malformed JSON: " + err.Error())
	}
	return nil
}

// pathID returns the single path segment after prefix, or "" when the path
// has more segments.
func pathID(path, prefix string) string {
	id := strings.TrimPrefix(path, prefix)
	if id == path || id == "" || strings.Contains(id, "/") {
		return ""
	}
	return id
}
