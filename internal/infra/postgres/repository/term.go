package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/infra/postgres"
)

// TermRepository reads the authored glossary from the database.
// The terms table is the authoring store the export pipeline publishes from.
type TermRepository struct {
	db postgres.DBTX
}

// NewTermRepository creates a new TermRepository with the provided database pool.
func NewTermRepository(db postgres.DBTX) *TermRepository {
	return &TermRepository{db: db}
}

// GetGlossary reads all terms in authored order and wraps them in a
// glossary document stamped with the given version.
func (r *TermRepository) GetGlossary(ctx context.Context, version string) (entities.Glossary, error) {
	query := `
		SELECT id, name_us, name_uk, abbreviation_us, abbreviation_uk,
		       symbol, category, description, instruction, tags,
		       difficulty, status, updated_at
		FROM terms
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return entities.Glossary{}, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	var (
		terms       []entities.Term
		lastUpdated time.Time
	)
	for rows.Next() {
		var (
			t         entities.Term
			updatedAt time.Time
		)
		err = rows.Scan(
			&t.ID,
			&t.NameUS,
			&t.NameUK,
			&t.AbbreviationUS,
			&t.AbbreviationUK,
			&t.Symbol,
			&t.Category,
			&t.Description,
			&t.Instruction,
			&t.Tags,
			&t.Difficulty,
			&t.Status,
			&updatedAt,
		)
		if err != nil {
			return entities.Glossary{}, fmt.Errorf("scan term: %w", err)
		}

		if updatedAt.After(lastUpdated) {
			lastUpdated = updatedAt
		}
		terms = append(terms, t)
	}
	if err = rows.Err(); err != nil {
		return entities.Glossary{}, fmt.Errorf("iterate terms: %w", err)
	}

	return entities.Glossary{
		Version:     version,
		LastUpdated: lastUpdated,
		TotalTerms:  len(terms),
		Terms:       terms,
	}, nil
}
