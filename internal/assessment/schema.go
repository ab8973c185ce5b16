package assessment

import "hopeconnect/internal/common/validation"

// SubmitSchema describes a submission body. Value ranges and question ids are
// checked by the scoring engine so that callers get the specific error code.
func SubmitSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"userId": {
				Type:        "string",
				Description: "Optional owner of the assessment; blank for anonymous",
				MaxLength:   validation.Int(64),
			},
			"answers": {
				Type:     "array",
				MinItems: validation.Int(1),
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"questionId", "value"},
					Properties: map[string]validation.Property{
						"questionId": {Type: "string", MinLength: validation.Int(1), MaxLength: validation.Int(64)},
						"value":      {Type: "integer", Description: "0 (not at all) to 3 (nearly every day)"},
						"text":       {Type: "string", MaxLength: validation.Int(2000)},
					},
				},
			},
		},
		Required: []string{"answers"},
	}
}

// GetSchema describes a lookup by assessment id.
func GetSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"assessmentId": {Type: "string", MinLength: validation.Int(1)},
		},
		Required: []string{"assessmentId"},
	}
}
