// internal/workers/assessment/submit-assessment/validation.go
package submitassessment

import (
	"hopeconnect/internal/assessment"
	"hopeconnect/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return assessment.SubmitSchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"assessmentId":     {Type: "string", Format: "uuid"},
			"totalScore":       {Type: "integer", Minimum: validation.Float(0)},
			"maxScore":         {Type: "integer", Minimum: validation.Float(0)},
			"percentage":       {Type: "number", Minimum: validation.Float(0), Maximum: validation.Float(100)},
			"severity":         {Type: "string", Enum: []string{"minimal", "mild", "moderate", "severe"}},
			"interpretation":   {Type: "string"},
			"recommendations":  {Type: "string"},
			"requiresOutreach": {Type: "boolean"},
		},
		Required: []string{"assessmentId", "totalScore", "maxScore", "severity", "interpretation", "recommendations"},
	}
}

var inputValidator = validation.MustCompile(GetInputSchema())
