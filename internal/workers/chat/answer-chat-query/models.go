// internal/workers/chat/answer-chat-query/models.go
package answerchatquery

import "hopeconnect/internal/models"

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	models.ChatResponse
	ServiceCount int `json:"serviceCount"`
}
