package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

var (
	ErrTermNotFound  = errors.New("term not found")
	ErrEmptyGlossary = errors.New("glossary contains no terms")
)

// GlossaryRepository provides read access to the authored glossary.
// This implementation loads the JSON asset once and serves it from memory.
type GlossaryRepository struct {
	glossary entities.Glossary
	byID     map[string]int // term id -> index into glossary.Terms
}

// NewGlossaryRepository loads the glossary JSON file at path.
func NewGlossaryRepository(path string) (*GlossaryRepository, error) {
	glossary, err := loadGlossary(path)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(glossary.Terms))
	for i, t := range glossary.Terms {
		byID[t.ID] = i
	}

	return &GlossaryRepository{
		glossary: glossary,
		byID:     byID,
	}, nil
}

// Glossary returns the full glossary document.
func (r *GlossaryRepository) Glossary() entities.Glossary {
	return r.glossary
}

// GetByID retrieves a term by its short code, case-insensitively.
func (r *GlossaryRepository) GetByID(id string) (*entities.Term, error) {
	idx, ok := r.byID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return nil, ErrTermNotFound
	}

	term := r.glossary.Terms[idx]
	return &term, nil
}

// GetRandom retrieves a random active term.
func (r *GlossaryRepository) GetRandom() (*entities.Term, error) {
	active := r.glossary.ActiveTerms()
	if len(active) == 0 {
		return nil, ErrEmptyGlossary
	}

	term := active[rand.Intn(len(active))]
	return &term, nil
}

// GetAll retrieves all terms in authoring order.
func (r *GlossaryRepository) GetAll() ([]entities.Term, error) {
	return r.glossary.Terms, nil
}

// GetByCategory retrieves the terms of one category, preserving order.
func (r *GlossaryRepository) GetByCategory(category entities.Category) ([]entities.Term, error) {
	out := make([]entities.Term, 0, len(r.glossary.Terms))
	for _, t := range r.glossary.Terms {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

// Search returns the terms whose id, names, abbreviations or tags contain
// the query, case-insensitively. Matching is plain substring containment.
func (r *GlossaryRepository) Search(query string) ([]entities.Term, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	out := make([]entities.Term, 0)
	for _, t := range r.glossary.Terms {
		if termMatches(t, q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func termMatches(t entities.Term, q string) bool {
	fields := []string{t.ID, t.NameUS, t.NameUK, t.AbbreviationUS, t.AbbreviationUK}
	fields = append(fields, t.Tags...)

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func loadGlossary(path string) (entities.Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Glossary{}, err
	}

	var glossary entities.Glossary
	if err = json.Unmarshal(data, &glossary); err != nil {
		return entities.Glossary{}, fmt.Errorf("failed to unmarshal glossary JSON: %w", err)
	}

	if len(glossary.Terms) == 0 {
		return entities.Glossary{}, ErrEmptyGlossary
	}
	if glossary.TotalTerms != len(glossary.Terms) {
		return entities.Glossary{}, fmt.Errorf(
			"glossary metadata reports %d terms, file holds %d",
			glossary.TotalTerms, len(glossary.Terms),
		)
	}

	return glossary, nil
}
