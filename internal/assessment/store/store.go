// Package store persists questions, assessments and answers in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an assessment id does not exist.
var ErrNotFound = errors.New("assessment not found")

const (
	listActiveQuestionsSQL = `
		SELECT id, display_order, text, is_active
		FROM assessment_questions
		WHERE is_active = TRUE
		ORDER BY display_order, id`

	insertAssessmentSQL = `
		INSERT INTO assessments (
			id, user_id, total_score, max_score, severity,
			interpretation, recommendations, is_completed, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	insertAnswerSQL = `
		INSERT INTO assessment_answers (id, assessment_id, question_id, value, answer_text)
		VALUES ($1, $2, $3, $4, $5)`

	selectAssessmentSQL = `
		SELECT id, user_id, total_score, max_score, severity,
		       interpretation, recommendations, is_completed, created_at
		FROM assessments
		WHERE id = $1`

	selectAnswersSQL = `
		SELECT a.id, a.assessment_id, a.question_id, a.value, a.answer_text
		FROM assessment_answers a
		JOIN assessment_questions q ON q.id = a.question_id
		WHERE a.assessment_id = $1
		ORDER BY q.display_order, a.question_id`

	selectHistorySQL = `
		SELECT id, user_id, total_score, max_score, severity,
		       interpretation, recommendations, is_completed, created_at
		FROM assessments
		WHERE user_id = $1 AND is_completed = TRUE
		ORDER BY created_at DESC, id DESC`

	upsertQuestionSQL = `
		INSERT INTO assessment_questions (id, display_order, text, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET display_order = EXCLUDED.display_order,
		    text = EXCLUDED.text,
		    is_active = EXCLUDED.is_active`
)

// Store is the PostgreSQL repository for the questionnaire.
type Store struct {
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

func New(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "assessment-store"}),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// ListActiveQuestions returns the active questions in display order.
func (s *Store) ListActiveQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, listActiveQuestionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Order, &q.Text, &q.Active); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}

// CreateAssessment writes the assessment row and every answer row in one
// transaction. Nothing is visible unless all writes succeed.
func (s *Store) CreateAssessment(ctx context.Context, userID *string, answers []models.AnswerInput, result *models.ScoreResult) (*models.Assessment, error) {
	a := &models.Assessment{
		ID:              s.newID(),
		UserID:          userID,
		TotalScore:      result.TotalScore,
		MaxScore:        result.MaxScore,
		Severity:        result.Severity,
		Interpretation:  result.Interpretation,
		Recommendations: result.Recommendations,
		Completed:       true,
		CreatedAt:       s.now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertAssessmentSQL,
		a.ID, nullString(userID), a.TotalScore, a.MaxScore, string(a.Severity),
		a.Interpretation, a.Recommendations, a.Completed, a.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}

	for i, ans := range answers {
		text := sql.NullString{String: ans.Text, Valid: ans.Text != ""}
		if _, err := tx.ExecContext(ctx, insertAnswerSQL,
			s.newID(), a.ID, ans.QuestionID, ans.Value, text,
		); err != nil {
			return nil, fmt.Errorf("insert answer %d of %d: %w", i+1, len(answers), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assessment: %w", err)
	}

	s.logger.Info("assessment stored", map[string]interface{}{
		"assessmentId": a.ID,
		"answers":      len(answers),
		"severity":     a.Severity,
	})
	return a, nil
}

// GetAssessmentWithAnswers loads an assessment and its answers. Unknown or
// malformed ids return ErrNotFound.
func (s *Store) GetAssessmentWithAnswers(ctx context.Context, id string) (*models.AssessmentWithAnswers, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	a, err := scanAssessment(s.db.QueryRowContext(ctx, selectAssessmentSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, selectAnswersSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var (
			ans  models.Answer
			text sql.NullString
		)
		if err := rows.Scan(&ans.ID, &ans.AssessmentID, &ans.QuestionID, &ans.Value, &text); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		ans.Text = text.String
		answers = append(answers, ans)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return &models.AssessmentWithAnswers{Assessment: *a, Answers: answers}, nil
}

// GetUserAssessmentHistory returns a user's completed assessments, newest
// first.
func (s *Store) GetUserAssessmentHistory(ctx context.Context, userID string) ([]models.Assessment, error) {
	rows, err := s.db.QueryContext(ctx, selectHistorySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	defer rows.Close()

	history := []models.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		history = append(history, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return history, nil
}

// UpsertQuestions inserts or updates the question set in one transaction.
func (s *Store) UpsertQuestions(ctx context.Context, questions []models.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range questions {
		if _, err := tx.ExecContext(ctx, upsertQuestionSQL, q.ID, q.Order, q.Text, q.Active); err != nil {
			return fmt.Errorf("upsert question %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var (
		a        models.Assessment
		userID   sql.NullString
		severity string
	)
	if err := row.Scan(
		&a.ID, &userID, &a.TotalScore, &a.MaxScore, &severity,
		&a.Interpretation, &a.Recommendations, &a.Completed, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		u := userID.String
		a.UserID = &u
	}
	a.Severity = models.Severity(severity)
	return &a, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
