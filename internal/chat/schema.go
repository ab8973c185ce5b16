package chat

import "hopeconnect/internal/common/validation"

func QuerySchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"message": {Type: "string", MinLength: validation.Int(1), MaxLength: validation.Int(500)},
		},
		Required: []string{"message"},
	}
}
