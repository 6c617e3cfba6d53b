package service

import (
	"errors"
	"testing"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

func TestValidateGlossary(t *testing.T) {
	valid := basicTerm("SC", "single crochet", "double crochet", "")

	tests := []struct {
		name       string
		glossary   entities.Glossary
		wantTermID string // empty means the glossary is valid
	}{
		{
			name:     "valid",
			glossary: newGlossary(valid),
		},
		{
			name: "count mismatch",
			glossary: entities.Glossary{
				TotalTerms: 2,
				Terms:      []entities.Term{valid},
			},
			wantTermID: "-",
		},
		{
			name:       "missing id",
			glossary:   newGlossary(basicTerm("", "a", "b", "")),
			wantTermID: "-",
		},
		{
			name:       "duplicate id",
			glossary:   newGlossary(valid, valid),
			wantTermID: "SC",
		},
		{
			name:       "empty name_us",
			glossary:   newGlossary(basicTerm("CH", "", "chain", "")),
			wantTermID: "CH",
		},
		{
			name:       "empty name_uk",
			glossary:   newGlossary(basicTerm("CH", "chain", "", "")),
			wantTermID: "CH",
		},
		{
			name: "unknown difficulty",
			glossary: func() entities.Glossary {
				t := basicTerm("CH", "chain", "chaîne", "")
				t.Difficulty = "Expert"
				return newGlossary(t)
			}(),
			wantTermID: "CH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGlossary(tt.glossary)
			if tt.wantTermID == "" {
				if err != nil {
					t.Fatalf("ValidateGlossary() error = %v, want nil", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if vErr.TermID != tt.wantTermID {
				t.Errorf("ValidationError.TermID = %q, want %q", vErr.TermID, tt.wantTermID)
			}
		})
	}
}
