// internal/workers/assessment/get-assessment/models.go
package getassessment

import "hopeconnect/internal/models"

type Input struct {
	AssessmentID string `json:"assessmentId"`
}

type Output struct {
	Assessment models.Assessment `json:"assessment"`
	Answers    []models.Answer   `json:"answers"`
}
