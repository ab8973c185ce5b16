package store

import (
	"fmt"
	"os"

	"hopeconnect/internal/models"

	"gopkg.in/yaml.v3"
)

type questionSeed struct {
	Questions []struct {
		ID     string `yaml:"id"`
		Order  int    `yaml:"order"`
		Text   string `yaml:"text"`
		Active *bool  `yaml:"active"`
	} `yaml:"questions"`
}

// LoadQuestionSeed reads the bundled questionnaire. Questions are active
// unless the file says otherwise.
func LoadQuestionSeed(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question seed: %w", err)
	}
	return ParseQuestionSeed(data)
}

func ParseQuestionSeed(data []byte) ([]models.Question, error) {
	var seed questionSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse question seed: %w", err)
	}

	seen := make(map[string]bool, len(seed.Questions))
	out := make([]models.Question, 0, len(seed.Questions))
	for i, q := range seed.Questions {
		if q.ID == "" || q.Text == "" {
			return nil, fmt.Errorf("question %d: id and text are required", i+1)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("question %s: duplicate id", q.ID)
		}
		seen[q.ID] = true

		order := q.Order
		if order == 0 {
			order = i + 1
		}
		active := true
		if q.Active != nil {
			active = *q.Active
		}
		out = append(out, models.Question{ID: q.ID, Order: order, Text: q.Text, Active: active})
	}
	return out, nil
}
