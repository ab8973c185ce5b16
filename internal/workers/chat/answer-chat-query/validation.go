// internal/workers/chat/answer-chat-query/validation.go
package answerchatquery

import (
	"hopeconnect/internal/chat"
	"hopeconnect/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return chat.QuerySchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"understood":            {Type: "boolean"},
			"location":              {Type: "string"},
			"serviceType":           {Type: "string"},
			"services":              {Type: "array", Items: &validation.Property{Type: "object"}},
			"availableServiceTypes": {Type: "array", Items: &validation.Property{Type: "string"}},
			"message":               {Type: "string"},
			"serviceCount":          {Type: "integer", Minimum: validation.Float(0)},
		},
		Required: []string{"understood", "message", "serviceCount"},
	}
}

var inputValidator = validation.MustCompile(GetInputSchema())
