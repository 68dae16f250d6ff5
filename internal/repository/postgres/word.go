package postgres

import (
	"database/sql"

	"wordofday/internal/domain"
)

// WordRepo reads the word list from the words table
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// ListWords returns all words ordered by their list position
func (r *WordRepo) ListWords() ([]domain.Word, error) {
	query := `
		SELECT text, definition, part_of_speech, example
		FROM words
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var partOfSpeech string
		if err := rows.Scan(&w.Text, &w.Definition, &partOfSpeech, &w.Example); err != nil {
			return nil, err
		}
		w.PartOfSpeech = domain.ParsePartOfSpeech(partOfSpeech)
		words = append(words, w)
	}

	return words, rows.Err()
}
