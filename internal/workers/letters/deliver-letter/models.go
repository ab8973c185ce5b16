// internal/workers/letters/deliver-letter/models.go
package deliverletter

import "hopeconnect/internal/models"

type Input struct {
	models.LetterRequest
	RecipientEmail string `json:"recipientEmail"`
}

type Output struct {
	LetterID     string `json:"letterId,omitempty"`
	LanguageCode string `json:"languageCode"`
	LetterType   string `json:"letterType"`
	MessageID    string `json:"messageId"`
	Delivered    bool   `json:"delivered"`
}
