// Package assessment runs the self-assessment questionnaire: it lists the
// active questions, scores a submission, stores it and reads it back.
package assessment

import (
	"context"
	stderrors "errors"
	"strings"

	"hopeconnect/internal/assessment/scoring"
	"hopeconnect/internal/assessment/store"
	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
	"hopeconnect/internal/models"
)

// Repository is the persistence the service needs. *store.Store implements it.
type Repository interface {
	CreateAssessment(ctx context.Context, userID *string, answers []models.AnswerInput, result *models.ScoreResult) (*models.Assessment, error)
	GetAssessmentWithAnswers(ctx context.Context, id string) (*models.AssessmentWithAnswers, error)
	GetUserAssessmentHistory(ctx context.Context, userID string) ([]models.Assessment, error)
}

// Alerter is told about every stored assessment. *notify.Outreach implements it.
type Alerter interface {
	SevereAssessment(ctx context.Context, a *models.Assessment) error
}

type Service struct {
	questions store.QuestionSource
	repo      Repository
	alerter   Alerter
	logger    logger.Logger
}

// NewService wires the service. alerter may be nil.
func NewService(questions store.QuestionSource, repo Repository, alerter Alerter, log logger.Logger) *Service {
	return &Service{
		questions: questions,
		repo:      repo,
		alerter:   alerter,
		logger:    log.WithFields(map[string]interface{}{"component": "assessment-service"}),
	}
}

// Questions returns the active questionnaire in display order.
func (s *Service) Questions(ctx context.Context) ([]models.Question, error) {
	questions, err := s.questions.ListActiveQuestions(ctx)
	if err != nil {
		return nil, errors.NewQueryError("list_questions", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

// Submit scores answers against the active questions and stores the result
// atomically. A blank userID records an anonymous assessment.
func (s *Service) Submit(ctx context.Context, userID string, answers []models.AnswerInput) (*models.SubmissionResult, error) {
	questions, err := s.questions.ListActiveQuestions(ctx)
	if err != nil {
		metrics.AssessmentSubmitFailures.Inc()
		return nil, errors.NewAssessmentSubmitFailedError(err)
	}

	result, err := scoring.Score(questions, answers)
	if err != nil {
		return nil, err
	}

	var owner *string
	if id := strings.TrimSpace(userID); id != "" {
		owner = &id
	}

	stored, err := s.repo.CreateAssessment(ctx, owner, answers, result)
	if err != nil {
		metrics.AssessmentSubmitFailures.Inc()
		s.logger.Error("assessment not stored", map[string]interface{}{"error": err})
		return nil, errors.NewAssessmentSubmitFailedError(err)
	}
	metrics.AssessmentsSubmitted.WithLabelValues(string(stored.Severity)).Inc()

	if s.alerter != nil {
		if err := s.alerter.SevereAssessment(ctx, stored); err != nil {
			s.logger.Warn("outreach alert failed", map[string]interface{}{
				"assessmentId": stored.ID,
				"error":        err,
			})
		}
	}

	return &models.SubmissionResult{
		AssessmentID:    stored.ID,
		TotalScore:      stored.TotalScore,
		MaxScore:        stored.MaxScore,
		Percentage:      result.Percentage,
		Severity:        stored.Severity,
		Interpretation:  stored.Interpretation,
		Recommendations: stored.Recommendations,
		CreatedAt:       stored.CreatedAt,
	}, nil
}

// Get returns a stored assessment with its answers. The stored text is
// returned as written, never recomputed.
func (s *Service) Get(ctx context.Context, id string) (*models.AssessmentWithAnswers, error) {
	a, err := s.repo.GetAssessmentWithAnswers(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NewAssessmentNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewQueryError("get_assessment", err)
	}
	return a, nil
}

// History returns a user's completed assessments, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]models.Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("userId is required")
	}
	history, err := s.repo.GetUserAssessmentHistory(ctx, userID)
	if err != nil {
		return nil, errors.NewQueryError("assessment_history", err)
	}
	return history, nil
}
