// Package httpapi is the JSON HTTP API in front of the assessment, letter,
// chat, directory and certificate services.
package httpapi

import (
	"context"

	"hopeconnect/internal/assessment"
	"hopeconnect/internal/chat"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/validation"
	"hopeconnect/internal/letters"
	"hopeconnect/internal/models"
)

const defaultMaxBodyBytes = 1 << 20

type AssessmentService interface {
	Questions(ctx context.Context) ([]models.Question, error)
	Submit(ctx context.Context, userID string, answers []models.AnswerInput) (*models.SubmissionResult, error)
	Get(ctx context.Context, id string) (*models.AssessmentWithAnswers, error)
	History(ctx context.Context, userID string) ([]models.Assessment, error)
}

type LetterService interface {
	Render(ctx context.Context, req models.LetterRequest) (*models.Letter, error)
	Deliver(ctx context.Context, req models.LetterRequest, recipientEmail string) (*letters.Delivery, error)
}

type ChatResponder interface {
	Respond(ctx context.Context, message string) models.ChatResponse
}

type DirectorySearcher interface {
	Search(ctx context.Context, text, location string) (*models.DirectorySearchResult, error)
}

type CertificateVerifier interface {
	Verify(ctx context.Context, id string) (*models.Certificate, error)
}

// Deps are the services behind the API. Directory and Certificates may be
// nil, in which case their routes are not registered.
type Deps struct {
	Assessments  AssessmentService
	Letters      LetterService
	Chat         ChatResponder
	Directory    DirectorySearcher
	Certificates CertificateVerifier
}

type API struct {
	deps     Deps
	logger   logger.Logger
	maxBytes int64
}

var (
	submitValidator  = validation.MustCompile(assessment.SubmitSchema())
	renderValidator  = validation.MustCompile(letters.RenderSchema())
	deliverValidator = validation.MustCompile(letters.DeliverSchema())
	chatValidator    = validation.MustCompile(chat.QuerySchema())
)

func NewAPI(deps Deps, log logger.Logger, maxBodyBytes int64) *API {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &API{
		deps:     deps,
		logger:   log.WithFields(map[string]interface{}{"component": "httpapi"}),
		maxBytes: maxBodyBytes,
	}
}

// Register adds every API route to r.
func (a *API) Register(r *Router) {
	r.Handle("/api/v1/assessment/questions", "GET", a.listQuestions)
	r.Handle("/api/v1/assessment/submit", "POST", a.submitAssessment)
	r.Handle("/api/v1/assessment/", "GET", a.getAssessment)
	r.Handle("/api/v1/users/", "GET", a.userHistory)

	r.Handle("/api/v1/letters/templates", "GET", a.listTemplates)
	r.Handle("/api/v1/letters/render", "POST", a.renderLetter)
	r.Handle("/api/v1/letters/send", "POST", a.sendLetter)

	r.Handle("/api/v1/chat", "POST", a.chat)

	if a.deps.Directory != nil {
		r.Handle("/api/v1/directory/search", "GET", a.searchDirectory)
	}
	if a.deps.Certificates != nil {
		r.Handle("/api/v1/certificates/", "GET", a.verifyCertificate)
	}
}
