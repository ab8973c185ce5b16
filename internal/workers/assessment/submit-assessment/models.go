// internal/workers/assessment/submit-assessment/models.go
package submitassessment

import "hopeconnect/internal/models"

type Input struct {
	UserID  string               `json:"userId"`
	Answers []models.AnswerInput `json:"answers"`
}

// Output is the scored assessment. RequiresOutreach lets a process route
// severe outcomes to a caseworker task.
type Output struct {
	AssessmentID     string          `json:"assessmentId"`
	TotalScore       int             `json:"totalScore"`
	MaxScore         int             `json:"maxScore"`
	Percentage       float64         `json:"percentage"`
	Severity         models.Severity `json:"severity"`
	Interpretation   string          `json:"interpretation"`
	Recommendations  string          `json:"recommendations"`
	RequiresOutreach bool            `json:"requiresOutreach"`
}
