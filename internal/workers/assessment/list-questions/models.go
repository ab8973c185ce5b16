// internal/workers/assessment/list-questions/models.go
package listquestions

import "hopeconnect/internal/models"

// Input carries no variables; the active set is global.
type Input struct{}

type Output struct {
	Questions     []models.Question `json:"questions"`
	QuestionCount int               `json:"questionCount"`
	MaxScore      int               `json:"maxScore"`
}
