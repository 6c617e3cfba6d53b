// Package entities contains domain entities used across the application.
package entities

// Difficulty is the skill tier a term is taught at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties lists the tiers in teaching order.
var AllDifficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Status marks whether a term is still published.
type Status string

const (
	StatusActive     Status = "Active"
	StatusDeprecated Status = "Deprecated"
)

// Category is the fixed grouping a term belongs to.
type Category string

const (
	CategoryBasic      Category = "Basic"
	CategoryAdvanced   Category = "Advanced"
	CategoryTechniques Category = "Techniques"
	CategoryTools      Category = "Tools"
	CategoryColorwork  Category = "Colorwork"
	CategoryFinishing  Category = "Finishing"
)

// AllCategories lists the fixed category enumeration.
var AllCategories = []Category{
	CategoryBasic,
	CategoryAdvanced,
	CategoryTechniques,
	CategoryTools,
	CategoryColorwork,
	CategoryFinishing,
}

// Term represents one glossary entry describing a crochet stitch,
// technique or tool. It carries both US and UK naming, the chart symbol,
// and the free-text instruction used for quiz generation.
type Term struct {
	ID             string     `json:"id"`              // unique short code, e.g. "SC"
	NameUS         string     `json:"name_us"`         // US name of the term
	NameUK         string     `json:"name_uk"`         // UK name of the term
	AbbreviationUS string     `json:"abbreviation_us"` // US pattern abbreviation
	AbbreviationUK string     `json:"abbreviation_uk"` // UK pattern abbreviation
	Symbol         string     `json:"symbol"`          // chart symbol, if any
	Category       Category   `json:"category"`        // fixed category grouping
	Description    string     `json:"description"`     // short description of the term
	Instruction    string     `json:"instruction"`     // how-to text, may be empty
	Tags           []string   `json:"tags"`            // free-form search tags
	Difficulty     Difficulty `json:"difficulty"`      // skill tier
	Status         Status     `json:"status"`          // Active or Deprecated
}

// IsActive reports whether the term should be published and quizzed.
func (t Term) IsActive() bool {
	return t.Status == StatusActive
}
