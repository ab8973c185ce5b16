// internal/workers/assessment/list-questions/validation.go
package listquestions

import "hopeconnect/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{Type: "object", Properties: map[string]validation.Property{}}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"questions":     {Type: "array", Items: &validation.Property{Type: "object"}},
			"questionCount": {Type: "integer", Minimum: validation.Float(0)},
			"maxScore":      {Type: "integer", Minimum: validation.Float(0)},
		},
		Required: []string{"questions", "questionCount", "maxScore"},
	}
}
