// Package scoring turns a complete answer set into a total score, a severity
// band and the band's fixed guidance text. It has no side effects.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/models"
)

const (
	MinAnswerValue = 0
	MaxAnswerValue = 3
)

// Score validates answers against the active question set and scores them.
// Every active question must be answered exactly once with a value in
// [MinAnswerValue, MaxAnswerValue].
func Score(questions []models.Question, answers []models.AnswerInput) (*models.ScoreResult, error) {
	if err := Validate(questions, answers); err != nil {
		return nil, err
	}

	total := 0
	for _, a := range answers {
		total += a.Value
	}
	max := MaxAnswerValue * len(questions)
	band := ClassifyScore(total, max)

	return &models.ScoreResult{
		TotalScore:      total,
		MaxScore:        max,
		Percentage:      Percentage(total, max),
		Severity:        band.Severity,
		Interpretation:  band.Interpretation + " " + Disclaimer,
		Recommendations: band.Recommendations,
	}, nil
}

// Validate checks the answer set without scoring it.
func Validate(questions []models.Question, answers []models.AnswerInput) error {
	if len(questions) == 0 {
		return errors.NewValidationError("no active questions")
	}

	known := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		if _, ok := known[a.QuestionID]; !ok {
			return errors.NewUnknownQuestionError(a.QuestionID)
		}
		if _, dup := seen[a.QuestionID]; dup {
			return errors.NewIncompleteAssessmentError(fmt.Sprintf("duplicate answer for question %s", a.QuestionID))
		}
		if a.Value < MinAnswerValue || a.Value > MaxAnswerValue {
			return errors.NewInvalidAnswerValueError(a.QuestionID, a.Value)
		}
		seen[a.QuestionID] = struct{}{}
	}

	var missing []string
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return errors.NewIncompleteAssessmentError("missing answers for: " + strings.Join(missing, ", "))
	}
	return nil
}

// Percentage is total/max*100 rounded to two decimals for display.
func Percentage(total, max int) float64 {
	if max == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(max)*10000) / 100
}
