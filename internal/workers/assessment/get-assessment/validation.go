// internal/workers/assessment/get-assessment/validation.go
package getassessment

import (
	"hopeconnect/internal/assessment"
	"hopeconnect/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return assessment.GetSchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"assessment": {Type: "object"},
			"answers":    {Type: "array", Items: &validation.Property{Type: "object"}},
		},
		Required: []string{"assessment", "answers"},
	}
}

var inputValidator = validation.MustCompile(GetInputSchema())
