package entities

// QuestionType identifies how a question was derived from its source term.
type QuestionType string

const (
	QuestionTypeInstruction QuestionType = "instruction"
	QuestionTypeTerminology QuestionType = "terminology"
	QuestionTypeCategory    QuestionType = "category"
)

// Question is one generated quiz item derived from a term.
// Distractors never contain the answer and hold no duplicates.
type Question struct {
	ID          string       `json:"id"`          // source term id plus a kind tag, e.g. "inst_SC"
	TermID      string       `json:"term_id"`     // id of the source term
	Type        QuestionType `json:"type"`        // how the question was derived
	Text        string       `json:"question"`    // question text shown to the user
	Answer      string       `json:"answer"`      // the correct answer
	Distractors []string     `json:"distractors"` // wrong multiple-choice options
	Category    Category     `json:"category"`    // category of the source term
	Difficulty  Difficulty   `json:"difficulty"`  // difficulty of the source term
	Points      int          `json:"points"`      // points awarded for a correct answer
}

// OptionCount is the number of multiple-choice options the question renders to.
func (q Question) OptionCount() int {
	return 1 + len(q.Distractors)
}
