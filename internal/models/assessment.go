// internal/models/assessment.go
package models

import "time"

// Question is one item of the self-assessment questionnaire.
type Question struct {
	ID     string `json:"questionId"`
	Order  int    `json:"order"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// AnswerInput is a submitted (question, value) pair.
type AnswerInput struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
	Text       string `json:"text,omitempty"`
}

// Answer is a persisted answer row.
type Answer struct {
	ID           string `json:"id"`
	AssessmentID string `json:"assessmentId"`
	QuestionID   string `json:"questionId"`
	Value        int    `json:"value"`
	Text         string `json:"text,omitempty"`
}

// ScoreResult is the outcome of scoring a full answer set.
type ScoreResult struct {
	TotalScore      int      `json:"totalScore"`
	MaxScore        int      `json:"maxScore"`
	Percentage      float64  `json:"percentage"`
	Severity        Severity `json:"severity"`
	Interpretation  string   `json:"interpretation"`
	Recommendations string   `json:"recommendations"`
}

// Assessment is a completed, immutable questionnaire run. Score and text are
// frozen at creation.
type Assessment struct {
	ID              string    `json:"assessmentId"`
	UserID          *string   `json:"userId,omitempty"`
	TotalScore      int       `json:"totalScore"`
	MaxScore        int       `json:"maxScore"`
	Severity        Severity  `json:"severity"`
	Interpretation  string    `json:"interpretation"`
	Recommendations string    `json:"recommendations"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AssessmentWithAnswers struct {
	Assessment Assessment `json:"assessment"`
	Answers    []Answer   `json:"answers"`
}

// SubmissionResult is returned to the client after a successful submit.
type SubmissionResult struct {
	AssessmentID    string    `json:"assessmentId"`
	TotalScore      int       `json:"totalScore"`
	MaxScore        int       `json:"maxScore"`
	Percentage      float64   `json:"percentage"`
	Severity        Severity  `json:"severity"`
	Interpretation  string    `json:"interpretation"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
}
