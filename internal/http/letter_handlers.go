package httpapi

import (
	"net/http"

	"hopeconnect/internal/letters"
	"hopeconnect/internal/models"
)

type sendRequest struct {
	models.LetterRequest
	RecipientEmail string `json:"recipientEmail"`
}

func (a *API) listTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(letters.Templates()))
}

func (a *API) renderLetter(w http.ResponseWriter, r *http.Request) {
	var req models.LetterRequest
	if err := readBodyJSON(r, a.maxBytes, renderValidator, &req); err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	letter, err := a.deps.Letters.Render(r.Context(), req)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(letter))
}

func (a *API) sendLetter(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := readBodyJSON(r, a.maxBytes, deliverValidator, &req); err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	delivery, err := a.deps.Letters.Deliver(r.Context(), req.LetterRequest, req.RecipientEmail)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusAccepted, Ok(delivery))
}
