package httpapi

import (
	"net/http"

	"hopeconnect/internal/common/errors"
)

type chatRequest struct {
	Message string `json:"message"`
}

// chat always answers 200; a message that was not understood is a normal
// reply with understood=false.
func (a *API) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := readBodyJSON(r, a.maxBytes, chatValidator, &req); err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(a.deps.Chat.Respond(r.Context(), req.Message)))
}

func (a *API) searchDirectory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text, location := q.Get("q"), q.Get("location")
	if len(text) > 200 || len(location) > 100 {
		writeError(w, r, errors.NewValidationError("search terms too long"), a.logger)
		return
	}
	result, err := a.deps.Directory.Search(r.Context(), text, location)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}

func (a *API) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/v1/certificates/")
	if id == "" {
		writeError(w, r, errors.NewValidationError("certificate id is required"), a.logger)
		return
	}
	cert, err := a.deps.Certificates.Verify(r.Context(), id)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(cert))
}
