// internal/workers/letters/render-letter/models.go
package renderletter

import "hopeconnect/internal/models"

type Input struct {
	models.LetterRequest
}

type Output struct {
	LetterID     string `json:"letterId,omitempty"`
	LanguageCode string `json:"languageCode"`
	LetterType   string `json:"letterType"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	FellBack     bool   `json:"languageFellBack"`
}
