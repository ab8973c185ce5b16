package httpapi

import (
	"net/http"
	"strings"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/models"
)

type submitRequest struct {
	UserID  string               `json:"userId"`
	Answers []models.AnswerInput `json:"answers"`
}

func (a *API) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := a.deps.Assessments.Questions(r.Context())
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(questions))
}

func (a *API) submitAssessment(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := readBodyJSON(r, a.maxBytes, submitValidator, &req); err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	result, err := a.deps.Assessments.Submit(r.Context(), req.UserID, req.Answers)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(result))
}

func (a *API) getAssessment(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/v1/assessment/")
	if id == "" {
		writeError(w, r, errors.NewAssessmentNotFoundError(r.URL.Path), a.logger)
		return
	}
	found, err := a.deps.Assessments.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(found))
}

// userHistory serves /api/v1/users/{userId}/assessments.
func (a *API) userHistory(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	userID, ok := strings.CutSuffix(rest, "/assessments")
	if !ok || userID == "" || strings.Contains(userID, "/") {
		writeError(w, r, errors.NewResourceNotFoundError("api", r.URL.Path), a.logger)
		return
	}
	history, err := a.deps.Assessments.History(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, a.logger)
		return
	}
	writeJSON(w, http.StatusOK, Ok(history))
}
