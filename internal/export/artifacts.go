// Package export serializes the glossary and the compiled quiz packages
// into the published JSON documents.
package export

import (
	"sort"
	"strings"
	"time"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/service"
)

// Published file names. Consumers fetch these raw from the CDN, so the
// names and shapes are a stable contract.
const (
	FileGlossary   = "glossary.json"
	FileTerms      = "terms.json"
	FileCategories = "categories.json"
	FileQuiz       = "quiz.json"
	FileAPIInfo    = "api-info.json"
	DirQuizzes     = "quizzes"
	FileQuizStats  = "quiz_stats.json"
)

// Meta is the shared header of the lightweight projections.
type Meta struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
	TotalTerms  int       `json:"total_terms"`
}

// GlossaryDoc is the shape of glossary.json.
type GlossaryDoc struct {
	Version     string          `json:"version"`
	LastUpdated time.Time       `json:"last_updated"`
	TotalTerms  int             `json:"total_terms"`
	Terms       []entities.Term `json:"terms"`
	SearchIndex []string        `json:"search_index"`
}

// SlimTerm is the reduced projection used by terms.json and categories.json.
type SlimTerm struct {
	ID             string              `json:"id"`
	NameUS         string              `json:"name_us"`
	NameUK         string              `json:"name_uk"`
	AbbreviationUS string              `json:"abbreviation_us"`
	AbbreviationUK string              `json:"abbreviation_uk"`
	Category       entities.Category   `json:"category"`
	Difficulty     entities.Difficulty `json:"difficulty"`
	Status         entities.Status     `json:"status"`
}

// TermsDoc is the shape of terms.json.
type TermsDoc struct {
	Meta Meta       `json:"meta"`
	Data []SlimTerm `json:"data"`
}

// CategoriesDoc is the shape of categories.json.
type CategoriesDoc struct {
	Meta Meta                  `json:"meta"`
	Data map[string][]SlimTerm `json:"data"`
}

// QuizDoc is the shape of quiz.json.
type QuizDoc struct {
	Version       string                          `json:"version"`
	Generated     time.Time                       `json:"generated"`
	TotalPackages int                             `json:"total_packages"`
	Packages      map[string]entities.QuizPackage `json:"packages"`
	Diagnostics   []service.Diagnostic            `json:"diagnostics,omitempty"`
}

// QuizStatsDoc is the shape of quizzes/quiz_stats.json.
type QuizStatsDoc struct {
	TotalQuestions        int            `json:"total_questions"`
	TermsWithInstructions int            `json:"terms_with_instructions"`
	TermsWithSymbols      int            `json:"terms_with_symbols"`
	Categories            []string       `json:"categories"`
	DifficultyBreakdown   map[string]int `json:"difficulty_breakdown"`
}

// APIInfoDoc is the shape of api-info.json.
type APIInfoDoc struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Endpoints   map[string]string `json:"endpoints"`
	Usage       APIUsage          `json:"usage"`
	LastUpdated time.Time         `json:"last_updated"`
}

// APIUsage documents how clients fetch the raw files.
type APIUsage struct {
	BaseURL string `json:"base_url"`
	Example string `json:"example"`
}

// BuildSearchIndex collects the lowercased ids, names, abbreviations and
// tags of all terms into a sorted, deduplicated list clients can match
// substrings against.
func BuildSearchIndex(terms []entities.Term) []string {
	seen := make(map[string]struct{})
	for _, t := range terms {
		entries := []string{t.ID, t.NameUS, t.NameUK, t.AbbreviationUS, t.AbbreviationUK}
		entries = append(entries, t.Tags...)
		for _, e := range entries {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			seen[e] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func slim(t entities.Term) SlimTerm {
	return SlimTerm{
		ID:             t.ID,
		NameUS:         t.NameUS,
		NameUK:         t.NameUK,
		AbbreviationUS: t.AbbreviationUS,
		AbbreviationUK: t.AbbreviationUK,
		Category:       t.Category,
		Difficulty:     t.Difficulty,
		Status:         t.Status,
	}
}
