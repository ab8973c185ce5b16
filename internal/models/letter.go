// internal/models/letter.go
package models

import "time"

// LetterFields are the named values substituted into a letter template.
// Empty fields render as empty strings.
type LetterFields struct {
	ClientName            string `json:"clientName,omitempty"`
	GenderCategory        string `json:"genderCategory,omitempty"`
	RecipientName         string `json:"recipientName,omitempty"`
	RecipientTitle        string `json:"recipientTitle,omitempty"`
	RecipientOrganization string `json:"recipientOrganization,omitempty"`
	RecipientAddress      string `json:"recipientAddress,omitempty"`
	SenderName            string `json:"senderName,omitempty"`
	SenderTitle           string `json:"senderTitle,omitempty"`
	SenderOrganization    string `json:"senderOrganization,omitempty"`
	SenderPhone           string `json:"senderPhone,omitempty"`
	SenderEmail           string `json:"senderEmail,omitempty"`
	Challenges            string `json:"challenges,omitempty"`
	Strengths             string `json:"strengths,omitempty"`
	Goals                 string `json:"goals,omitempty"`
	Date                  string `json:"date,omitempty"`
}

// LetterRequest is the flat wire shape of a render call.
type LetterRequest struct {
	LanguageCode string `json:"languageCode"`
	LetterType   string `json:"letterType"`
	LetterFields
}

// Letter is a rendered letter. Language is the language actually used,
// after fallback.
type Letter struct {
	ID         string    `json:"letterId,omitempty"`
	Language   string    `json:"languageCode"`
	LetterType string    `json:"letterType"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// TemplateInfo describes one bundled template.
type TemplateInfo struct {
	Language   string `json:"languageCode"`
	LetterType string `json:"letterType"`
	Title      string `json:"title"`
}
