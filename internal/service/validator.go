package service

import (
	"fmt"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// ValidateGlossary checks the glossary invariants quiz generation relies on:
// every term has an id, both names and a known difficulty tier, ids are
// unique across the collection, and the metadata count matches the term
// sequence.
func ValidateGlossary(g entities.Glossary) error {
	if g.TotalTerms != len(g.Terms) {
		return &ValidationError{
			TermID: "-",
			Reason: "total_terms does not match the number of terms",
		}
	}

	seen := make(map[string]struct{}, len(g.Terms))
	for _, t := range g.Terms {
		if t.ID == "" {
			return &ValidationError{TermID: "-", Reason: "term without id"}
		}
		if _, ok := seen[t.ID]; ok {
			return &ValidationError{TermID: t.ID, Reason: "duplicate id"}
		}
		seen[t.ID] = struct{}{}

		if t.NameUS == "" {
			return &ValidationError{TermID: t.ID, Reason: "empty name_us"}
		}
		if t.NameUK == "" {
			return &ValidationError{TermID: t.ID, Reason: "empty name_uk"}
		}
		if !knownDifficulty(t.Difficulty) {
			return &ValidationError{
				TermID: t.ID,
				Reason: fmt.Sprintf("unknown difficulty %q", t.Difficulty),
			}
		}
	}

	return nil
}

func knownDifficulty(d entities.Difficulty) bool {
	for _, known := range entities.AllDifficulties {
		if d == known {
			return true
		}
	}
	return false
}
