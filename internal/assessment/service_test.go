package assessment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hopeconnect/internal/assessment/store"
	apperrors "hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticQuestions struct {
	questions []models.Question
	err       error
}

func (s staticQuestions) ListActiveQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questions, s.err
}

type memoryRepo struct {
	stored    map[string]*models.AssessmentWithAnswers
	createErr error
	created   []*string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{stored: map[string]*models.AssessmentWithAnswers{}}
}

func (m *memoryRepo) CreateAssessment(ctx context.Context, userID *string, answers []models.AnswerInput, result *models.ScoreResult) (*models.Assessment, error) {
	m.created = append(m.created, userID)
	if m.createErr != nil {
		return nil, m.createErr
	}
	a := models.Assessment{
		ID:              fmt.Sprintf("a-%d", len(m.stored)+1),
		UserID:          userID,
		TotalScore:      result.TotalScore,
		MaxScore:        result.MaxScore,
		Severity:        result.Severity,
		Interpretation:  result.Interpretation,
		Recommendations: result.Recommendations,
		Completed:       true,
		CreatedAt:       time.Now().UTC(),
	}
	m.stored[a.ID] = &models.AssessmentWithAnswers{Assessment: a}
	return &a, nil
}

func (m *memoryRepo) GetAssessmentWithAnswers(ctx context.Context, id string) (*models.AssessmentWithAnswers, error) {
	a, ok := m.stored[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (m *memoryRepo) GetUserAssessmentHistory(ctx context.Context, userID string) ([]models.Assessment, error) {
	return []models.Assessment{}, nil
}

type recordingAlerter struct {
	seen []models.Severity
	err  error
}

func (r *recordingAlerter) SevereAssessment(ctx context.Context, a *models.Assessment) error {
	r.seen = append(r.seen, a.Severity)
	return r.err
}

func fiveQuestions() []models.Question {
	qs := make([]models.Question, 5)
	for i := range qs {
		qs[i] = models.Question{ID: fmt.Sprintf("q%d", i+1), Order: i + 1, Text: "q", Active: true}
	}
	return qs
}

func allAnswered(qs []models.Question, value int) []models.AnswerInput {
	out := make([]models.AnswerInput, len(qs))
	for i, q := range qs {
		out[i] = models.AnswerInput{QuestionID: q.ID, Value: value}
	}
	return out
}

func codeOf(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok, "expected StandardError, got %v", err)
	return stdErr.Code
}

func TestSubmit_SevereStoresAndAlerts(t *testing.T) {
	qs := fiveQuestions()
	repo := newMemoryRepo()
	alerter := &recordingAlerter{}
	svc := NewService(staticQuestions{questions: qs}, repo, alerter, logger.NewNoOpLogger())

	result, err := svc.Submit(context.Background(), "user-1", allAnswered(qs, 3))
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalScore)
	assert.Equal(t, 15, result.MaxScore)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, models.SeveritySevere, result.Severity)
	assert.Equal(t, []models.Severity{models.SeveritySevere}, alerter.seen)

	got, err := svc.Get(context.Background(), result.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, result.Interpretation, got.Assessment.Interpretation)
	require.NotNil(t, got.Assessment.UserID)
	assert.Equal(t, "user-1", *got.Assessment.UserID)
}

func TestSubmit_AnonymousWhenUserBlank(t *testing.T) {
	qs := fiveQuestions()
	repo := newMemoryRepo()
	svc := NewService(staticQuestions{questions: qs}, repo, nil, logger.NewNoOpLogger())

	_, err := svc.Submit(context.Background(), "  ", allAnswered(qs, 0))
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0])
}

func TestSubmit_AlertFailureDoesNotFailSubmission(t *testing.T) {
	qs := fiveQuestions()
	alerter := &recordingAlerter{err: errors.New("sns down")}
	svc := NewService(staticQuestions{questions: qs}, newMemoryRepo(), alerter, logger.NewNoOpLogger())

	result, err := svc.Submit(context.Background(), "", allAnswered(qs, 3))
	require.NoError(t, err)
	assert.Equal(t, models.SeveritySevere, result.Severity)
}

func TestSubmit_ValidationErrorsSkipStore(t *testing.T) {
	qs := fiveQuestions()
	repo := newMemoryRepo()
	svc := NewService(staticQuestions{questions: qs}, repo, nil, logger.NewNoOpLogger())

	answers := allAnswered(qs, 1)
	answers[2].Value = 7
	_, err := svc.Submit(context.Background(), "", answers)
	assert.Equal(t, apperrors.ErrCodeInvalidAnswerValue, codeOf(t, err))
	assert.Empty(t, repo.created)
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	qs := fiveQuestions()
	repo := newMemoryRepo()
	repo.createErr = errors.New("insert answer 6 of 10: connection reset")
	svc := NewService(staticQuestions{questions: qs}, repo, nil, logger.NewNoOpLogger())

	_, err := svc.Submit(context.Background(), "", allAnswered(qs, 2))
	assert.Equal(t, apperrors.ErrCodeAssessmentSubmitFailed, codeOf(t, err))
	assert.Equal(t, apperrors.CategoryPersistence, apperrors.GetErrorCategory(codeOf(t, err)))
}

func TestSubmit_QuestionLoadFailure(t *testing.T) {
	svc := NewService(staticQuestions{err: errors.New("db down")}, newMemoryRepo(), nil, logger.NewNoOpLogger())

	_, err := svc.Submit(context.Background(), "", nil)
	assert.Equal(t, apperrors.ErrCodeAssessmentSubmitFailed, codeOf(t, err))
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(staticQuestions{}, newMemoryRepo(), nil, logger.NewNoOpLogger())

	_, err := svc.Get(context.Background(), "missing")
	assert.Equal(t, apperrors.ErrCodeAssessmentNotFound, codeOf(t, err))
}

func TestHistory_RequiresUser(t *testing.T) {
	svc := NewService(staticQuestions{}, newMemoryRepo(), nil, logger.NewNoOpLogger())

	_, err := svc.History(context.Background(), "")
	assert.Equal(t, apperrors.ErrCodeValidationFailed, codeOf(t, err))

	history, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestQuestions_NeverNil(t *testing.T) {
	svc := NewService(staticQuestions{}, newMemoryRepo(), nil, logger.NewNoOpLogger())
	qs, err := svc.Questions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, qs)
}
