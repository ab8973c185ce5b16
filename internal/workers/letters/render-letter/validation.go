// internal/workers/letters/render-letter/validation.go
package renderletter

import (
	"hopeconnect/internal/common/validation"
	"hopeconnect/internal/letters"
)

func GetInputSchema() validation.JSONSchema {
	return letters.RenderSchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"letterId":         {Type: "string"},
			"languageCode":     {Type: "string", Enum: []string{"en", "es", "fr", "de", "zh"}},
			"letterType":       {Type: "string", Enum: []string{"housing", "employment", "services", "general"}},
			"title":            {Type: "string"},
			"body":             {Type: "string"},
			"languageFellBack": {Type: "boolean"},
		},
		Required: []string{"languageCode", "letterType", "title", "body"},
	}
}

var inputValidator = validation.MustCompile(GetInputSchema())
