package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAssessmentID = "4f6b1c1e-8a53-4f1c-9a4e-0a3c1d2e5b7f"

var (
	fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assessmentColumns = []string{
		"id", "user_id", "total_score", "max_score", "severity",
		"interpretation", "recommendations", "is_completed", "created_at",
	}
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := New(db, logger.NewNoOpLogger())
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return testAssessmentID }
	return s, mock
}

func tenAnswers() []models.AnswerInput {
	out := make([]models.AnswerInput, 10)
	for i := range out {
		out[i] = models.AnswerInput{QuestionID: fmt.Sprintf("q%02d", i+1), Value: i % 4}
	}
	return out
}

func severeResult() *models.ScoreResult {
	return &models.ScoreResult{
		TotalScore:      24,
		MaxScore:        30,
		Percentage:      80,
		Severity:        models.SeveritySevere,
		Interpretation:  "severe text",
		Recommendations: "severe recs",
	}
}

func TestListActiveQuestions(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessment_questions")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "display_order", "text", "is_active"}).
			AddRow("q01", 1, "Do you have somewhere safe to sleep tonight?", true).
			AddRow("q02", 2, "Have you been eating regularly?", true))

	questions, err := s.ListActiveQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q01", questions[0].ID)
	assert.Equal(t, 2, questions[1].Order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssessment_Commits(t *testing.T) {
	s, mock := newTestStore(t)
	userID := "user-42"
	answers := tenAnswers()
	answers[0].Text = "sleeping in a car"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assessments")).
		WithArgs(testAssessmentID, sql.NullString{String: userID, Valid: true}, 24, 30, "severe",
			"severe text", "severe recs", true, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i, a := range answers {
		text := driver.Value(sql.NullString{})
		if i == 0 {
			text = sql.NullString{String: "sleeping in a car", Valid: true}
		}
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assessment_answers")).
			WithArgs(testAssessmentID, testAssessmentID, a.QuestionID, a.Value, text).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	a, err := s.CreateAssessment(context.Background(), &userID, answers, severeResult())
	require.NoError(t, err)
	assert.Equal(t, testAssessmentID, a.ID)
	assert.Equal(t, models.SeveritySevere, a.Severity)
	assert.True(t, a.Completed)
	assert.Equal(t, fixedNow, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssessment_RollsBackOnAnswerFailure(t *testing.T) {
	s, mock := newTestStore(t)
	answers := tenAnswers()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assessments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 5; i++ {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assessment_answers")).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assessment_answers")).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	a, err := s.CreateAssessment(context.Background(), nil, answers, severeResult())
	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "insert answer 6 of 10")

	// Nothing was committed, so the id is unknown afterwards.
	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments")).
		WithArgs(testAssessmentID).
		WillReturnRows(sqlmock.NewRows(assessmentColumns))

	_, err = s.GetAssessmentWithAnswers(context.Background(), testAssessmentID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssessment_BeginFails(t *testing.T) {
	s, mock := newTestStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := s.CreateAssessment(context.Background(), nil, tenAnswers(), severeResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}

func TestGetAssessmentWithAnswers(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments")).
		WithArgs(testAssessmentID).
		WillReturnRows(sqlmock.NewRows(assessmentColumns).
			AddRow(testAssessmentID, nil, 3, 30, "minimal", "minimal text", "minimal recs", true, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta("FROM assessment_answers")).
		WithArgs(testAssessmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "assessment_id", "question_id", "value", "answer_text"}).
			AddRow("a1", testAssessmentID, "q01", 1, nil).
			AddRow("a2", testAssessmentID, "q02", 2, "not sure"))

	got, err := s.GetAssessmentWithAnswers(context.Background(), testAssessmentID)
	require.NoError(t, err)
	assert.Nil(t, got.Assessment.UserID)
	assert.Equal(t, models.SeverityMinimal, got.Assessment.Severity)
	require.Len(t, got.Answers, 2)
	assert.Equal(t, "", got.Answers[0].Text)
	assert.Equal(t, "not sure", got.Answers[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssessmentWithAnswers_MalformedID(t *testing.T) {
	s, mock := newTestStore(t)

	_, err := s.GetAssessmentWithAnswers(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserAssessmentHistory_NewestFirst(t *testing.T) {
	s, mock := newTestStore(t)
	older := fixedNow.Add(-48 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs("user-42").
		WillReturnRows(sqlmock.NewRows(assessmentColumns).
			AddRow("b", "user-42", 20, 30, "moderate", "i", "r", true, fixedNow).
			AddRow("a", "user-42", 5, 30, "minimal", "i", "r", true, older))

	history, err := s.GetUserAssessmentHistory(context.Background(), "user-42")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].CreatedAt.After(history[1].CreatedAt))
	require.NotNil(t, history[0].UserID)
	assert.Equal(t, "user-42", *history[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserAssessmentHistory_Empty(t *testing.T) {
	s, mock := newTestStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(assessmentColumns))

	history, err := s.GetUserAssessmentHistory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestUpsertQuestions(t *testing.T) {
	s, mock := newTestStore(t)
	qs := []models.Question{
		{ID: "q01", Order: 1, Text: "one", Active: true},
		{ID: "q02", Order: 2, Text: "two", Active: false},
	}

	mock.ExpectBegin()
	for _, q := range qs {
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
			WithArgs(q.ID, q.Order, q.Text, q.Active).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, s.UpsertQuestions(context.Background(), qs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseQuestionSeed(t *testing.T) {
	qs, err := ParseQuestionSeed([]byte(`
questions:
  - id: q01
    text: Do you have somewhere safe to sleep tonight?
  - id: q02
    order: 5
    text: Have you been eating regularly?
    active: false
`))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, 1, qs[0].Order)
	assert.True(t, qs[0].Active)
	assert.Equal(t, 5, qs[1].Order)
	assert.False(t, qs[1].Active)
}

func TestParseQuestionSeed_Invalid(t *testing.T) {
	_, err := ParseQuestionSeed([]byte("questions:\n  - id: q01\n    text: a\n  - id: q01\n    text: b\n"))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = ParseQuestionSeed([]byte("questions:\n  - id: q01\n"))
	assert.ErrorContains(t, err, "required")
}
