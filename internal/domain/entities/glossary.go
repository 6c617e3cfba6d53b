package entities

import "time"

// Glossary is the full ordered collection of terms plus publication metadata.
// It is the immutable input of quiz generation; term order is authoring order.
type Glossary struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
	TotalTerms  int       `json:"total_terms"`
	Terms       []Term    `json:"terms"`
}

// Categories returns the distinct categories present in the glossary,
// in first-seen order.
func (g Glossary) Categories() []Category {
	seen := make(map[Category]struct{}, len(AllCategories))
	out := make([]Category, 0, len(AllCategories))
	for _, t := range g.Terms {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// ActiveTerms returns the terms with status Active, preserving order.
func (g Glossary) ActiveTerms() []Term {
	out := make([]Term, 0, len(g.Terms))
	for _, t := range g.Terms {
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out
}
