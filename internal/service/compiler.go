package service

import (
	"fmt"
	"math/rand"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// questionKinds is the preference order in which question types are
// derived from a term.
var questionKinds = []entities.QuestionType{
	entities.QuestionTypeInstruction,
	entities.QuestionTypeTerminology,
	entities.QuestionTypeCategory,
}

// kind tags used to derive question ids from term ids.
const (
	idPrefixInstruction = "inst_"
	idPrefixTerminology = "term_"
	idPrefixCategory    = "cat_"
)

// CompilerConfig controls quiz generation.
type CompilerConfig struct {
	QuestionsPerTerm     int                         // max questions derived per eligible term
	DistractorCount      int                         // wrong options sampled per question
	PackagesByDifficulty bool                        // one package per difficulty tier instead of a single mixed one
	PointsByDifficulty   map[entities.Difficulty]int // points awarded per difficulty tier
	Seed                 int64                       // seed for distractor sampling
}

// NewCompilerConfig builds a CompilerConfig from plain configuration
// values, mapping difficulty names to point values.
func NewCompilerConfig(
	questionsPerTerm, distractorCount int,
	packagesByDifficulty bool,
	points map[string]int,
	seed int64,
) CompilerConfig {
	pointsByDifficulty := make(map[entities.Difficulty]int, len(points))
	for tier, value := range points {
		pointsByDifficulty[entities.Difficulty(tier)] = value
	}

	return CompilerConfig{
		QuestionsPerTerm:     questionsPerTerm,
		DistractorCount:      distractorCount,
		PackagesByDifficulty: packagesByDifficulty,
		PointsByDifficulty:   pointsByDifficulty,
		Seed:                 seed,
	}
}

// Diagnostic records a term that was skipped without failing the run.
type Diagnostic struct {
	TermID string `json:"term_id"`
	Reason string `json:"reason"`
}

// CompileResult is the outcome of one generation run.
type CompileResult struct {
	TotalQuestions int
	Packages       []entities.QuizPackage
	Diagnostics    []Diagnostic
}

// Package returns the package with the given key, if present.
func (r *CompileResult) Package(key string) (entities.QuizPackage, bool) {
	for _, p := range r.Packages {
		if p.Key == key {
			return p, true
		}
	}
	return entities.QuizPackage{}, false
}

// Compile derives quiz packages from a glossary.
//
// The transformation is pure and deterministic: identical glossary, config
// and seed always yield the identical question set in the same order.
// Question order follows the authoring order of the source terms; only
// Active terms are eligible. A term with no viable question type is skipped
// and reported in the diagnostics rather than failing the run.
func Compile(glossary entities.Glossary, cfg CompilerConfig) (*CompileResult, error) {
	if err := ValidateGlossary(glossary); err != nil {
		return nil, err
	}
	if cfg.QuestionsPerTerm < 1 {
		return nil, &ConfigError{Reason: "questions_per_term must be at least 1"}
	}
	if cfg.DistractorCount < 1 {
		return nil, &ConfigError{Reason: "distractor_count must be at least 1"}
	}

	eligible := glossary.ActiveTerms()

	// Point values must cover every difficulty in play before anything
	// is emitted: generation is all-or-nothing at this level.
	for _, t := range eligible {
		points, ok := cfg.PointsByDifficulty[t.Difficulty]
		if !ok {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("no point value for difficulty %q", t.Difficulty),
			}
		}
		if points < 1 {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("point value for difficulty %q must be positive", t.Difficulty),
			}
		}
	}

	c := &compilation{
		cfg:     cfg,
		sampler: &distractorSampler{rng: rand.New(rand.NewSource(cfg.Seed))},
	}
	c.index(eligible)

	var (
		questions   []entities.Question
		diagnostics []Diagnostic
	)
	for _, t := range eligible {
		emitted := 0
		for _, kind := range questionKinds {
			if emitted >= cfg.QuestionsPerTerm {
				break
			}
			q, ok := c.build(kind, t)
			if !ok {
				continue
			}
			questions = append(questions, q)
			emitted++
		}
		if emitted == 0 {
			diagnostics = append(diagnostics, Diagnostic{
				TermID: t.ID,
				Reason: "no viable question type",
			})
		}
	}

	return &CompileResult{
		TotalQuestions: len(questions),
		Packages:       buildPackages(questions, cfg.PackagesByDifficulty),
		Diagnostics:    diagnostics,
	}, nil
}

// compilation holds the per-run candidate indexes.
type compilation struct {
	cfg     CompilerConfig
	sampler *distractorSampler

	categories             []string                       // distinct categories among eligible terms
	namesUKByCategory      map[entities.Category][]string // name_uk pools for terminology distractors
	instructionsByCategory map[entities.Category][]string // instruction pools for instruction distractors
}

func (c *compilation) index(eligible []entities.Term) {
	c.namesUKByCategory = make(map[entities.Category][]string)
	c.instructionsByCategory = make(map[entities.Category][]string)

	seen := make(map[entities.Category]struct{})
	for _, t := range eligible {
		if _, ok := seen[t.Category]; !ok {
			seen[t.Category] = struct{}{}
			c.categories = append(c.categories, string(t.Category))
		}
		c.namesUKByCategory[t.Category] = append(c.namesUKByCategory[t.Category], t.NameUK)
		if t.Instruction != "" {
			c.instructionsByCategory[t.Category] = append(c.instructionsByCategory[t.Category], t.Instruction)
		}
	}
}

func (c *compilation) build(kind entities.QuestionType, t entities.Term) (entities.Question, bool) {
	switch kind {
	case entities.QuestionTypeInstruction:
		return c.buildInstruction(t)
	case entities.QuestionTypeTerminology:
		return c.buildTerminology(t)
	case entities.QuestionTypeCategory:
		return c.buildCategory(t)
	default:
		return entities.Question{}, false
	}
}

func (c *compilation) buildInstruction(t entities.Term) (entities.Question, bool) {
	if t.Instruction == "" {
		return entities.Question{}, false
	}

	return c.question(idPrefixInstruction, entities.QuestionTypeInstruction, t,
		fmt.Sprintf("How do you make a %s?", t.NameUS),
		t.Instruction,
		c.sampler.sample(c.instructionsByCategory[t.Category], t.Instruction, c.cfg.DistractorCount),
	), true
}

func (c *compilation) buildTerminology(t entities.Term) (entities.Question, bool) {
	if t.NameUK == t.NameUS {
		return entities.Question{}, false
	}

	distractors := c.sampler.sample(c.namesUKByCategory[t.Category], t.NameUK, c.cfg.DistractorCount)
	if len(distractors) == 0 {
		return entities.Question{}, false
	}

	return c.question(idPrefixTerminology, entities.QuestionTypeTerminology, t,
		fmt.Sprintf("What is the UK term for '%s'?", t.NameUS),
		t.NameUK,
		distractors,
	), true
}

func (c *compilation) buildCategory(t entities.Term) (entities.Question, bool) {
	// Category questions need enough sibling categories for a full
	// option set, otherwise the kind is not viable for any term.
	if len(c.categories) < c.cfg.DistractorCount+1 {
		return entities.Question{}, false
	}

	return c.question(idPrefixCategory, entities.QuestionTypeCategory, t,
		fmt.Sprintf("Which category does %s belong to?", t.NameUS),
		string(t.Category),
		c.sampler.sample(c.categories, string(t.Category), c.cfg.DistractorCount),
	), true
}

func (c *compilation) question(
	prefix string,
	kind entities.QuestionType,
	t entities.Term,
	text, answer string,
	distractors []string,
) entities.Question {
	return entities.Question{
		ID:          prefix + t.ID,
		TermID:      t.ID,
		Type:        kind,
		Text:        text,
		Answer:      answer,
		Distractors: distractors,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		Points:      c.cfg.PointsByDifficulty[t.Difficulty],
	}
}

// package display metadata, keyed by difficulty tier.
var packageMeta = map[entities.Difficulty]struct {
	key, name, description string
}{
	entities.DifficultyBeginner: {
		key:         entities.PackageKeyBeginner,
		name:        "Beginner Crochet Quiz",
		description: "Basic stitches and abbreviations",
	},
	entities.DifficultyIntermediate: {
		key:         entities.PackageKeyIntermediate,
		name:        "Intermediate Crochet Quiz",
		description: "US vs UK terms and complex stitches",
	},
	entities.DifficultyAdvanced: {
		key:         entities.PackageKeyAdvanced,
		name:        "Advanced Crochet Quiz",
		description: "Symbols, complex techniques, and expert knowledge",
	},
}

func buildPackages(questions []entities.Question, byDifficulty bool) []entities.QuizPackage {
	if !byDifficulty {
		if len(questions) == 0 {
			return nil
		}
		return []entities.QuizPackage{newPackage(
			entities.PackageKeyMaster,
			"Crochet Master Challenge",
			"Mixed questions from all skill levels",
			"",
			questions,
		)}
	}

	var packages []entities.QuizPackage
	for _, tier := range entities.AllDifficulties {
		var tierQuestions []entities.Question
		for _, q := range questions {
			if q.Difficulty == tier {
				tierQuestions = append(tierQuestions, q)
			}
		}
		if len(tierQuestions) == 0 {
			continue
		}

		meta := packageMeta[tier]
		packages = append(packages, newPackage(meta.key, meta.name, meta.description, tier, tierQuestions))
	}
	return packages
}

func newPackage(key, name, description string, tier entities.Difficulty, questions []entities.Question) entities.QuizPackage {
	totalPoints := 0
	for _, q := range questions {
		totalPoints += q.Points
	}

	return entities.QuizPackage{
		Key:            key,
		Name:           name,
		Description:    description,
		Difficulty:     tier,
		TotalQuestions: len(questions),
		TotalPoints:    totalPoints,
		Questions:      questions,
	}
}
