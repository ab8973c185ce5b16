// internal/workers/letters/deliver-letter/validation.go
package deliverletter

import (
	"hopeconnect/internal/common/validation"
	"hopeconnect/internal/letters"
)

func GetInputSchema() validation.JSONSchema {
	return letters.DeliverSchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"letterId":     {Type: "string"},
			"languageCode": {Type: "string"},
			"letterType":   {Type: "string"},
			"messageId":    {Type: "string"},
			"delivered":    {Type: "boolean"},
		},
		Required: []string{"languageCode", "letterType", "messageId", "delivered"},
	}
}

var inputValidator = validation.MustCompile(GetInputSchema())
