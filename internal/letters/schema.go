package letters

import "hopeconnect/internal/common/validation"

var fieldNames = []string{
	"clientName", "genderCategory",
	"recipientName", "recipientTitle", "recipientOrganization", "recipientAddress",
	"senderName", "senderTitle", "senderOrganization", "senderPhone", "senderEmail",
	"challenges", "strengths", "goals", "date",
}

// RenderSchema describes a render request. Language and type are checked by
// Render itself so unknown languages can fall back.
func RenderSchema() validation.JSONSchema {
	props := map[string]validation.Property{
		"languageCode": {Type: "string", MaxLength: validation.Int(16), Description: "en, es, fr, de or zh; others fall back to en"},
		"letterType":   {Type: "string", MinLength: validation.Int(1), Description: "housing, employment, services or general"},
	}
	for _, name := range fieldNames {
		props[name] = validation.Property{Type: "string", MaxLength: validation.Int(4000)}
	}
	return validation.JSONSchema{
		Type:       "object",
		Properties: props,
		Required:   []string{"letterType"},
	}
}

// DeliverSchema is RenderSchema plus the recipient address.
func DeliverSchema() validation.JSONSchema {
	s := RenderSchema()
	s.Properties["recipientEmail"] = validation.Property{Type: "string", Format: "email"}
	s.Required = append(s.Required, "recipientEmail")
	return s
}
