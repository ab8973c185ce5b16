package letters

import (
	"context"
	"database/sql"
	"fmt"

	"hopeconnect/internal/models"
)

const insertLetterSQL = `
	INSERT INTO generated_letters (id, language, letter_type, title, body, client_name, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Store keeps a copy of rendered letters in PostgreSQL.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveLetter(ctx context.Context, letter *models.Letter, clientName string) error {
	client := sql.NullString{String: clientName, Valid: clientName != ""}
	if _, err := s.db.ExecContext(ctx, insertLetterSQL,
		letter.ID, letter.Language, letter.LetterType, letter.Title, letter.Body, client, letter.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert letter: %w", err)
	}
	return nil
}
