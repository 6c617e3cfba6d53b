package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/service"
)

const apiBaseURL = "https://raw.githubusercontent.com/this4dani/crochet-glossary-api/main/"

// Writer serializes the publication artifacts into an output directory.
type Writer struct {
	outDir string
}

// NewWriter creates a writer rooted at outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// WriteAll writes every published document. generatedAt stamps the quiz
// and api-info documents; the glossary documents carry the glossary's own
// last_updated timestamp.
func (w *Writer) WriteAll(
	glossary entities.Glossary,
	result *service.CompileResult,
	generatedAt time.Time,
) error {
	if err := os.MkdirAll(filepath.Join(w.outDir, DirQuizzes), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := w.writeGlossary(glossary); err != nil {
		return err
	}
	if err := w.writeTerms(glossary); err != nil {
		return err
	}
	if err := w.writeCategories(glossary); err != nil {
		return err
	}
	if err := w.writeQuiz(glossary, result, generatedAt); err != nil {
		return err
	}
	if err := w.writeAPIInfo(glossary, generatedAt); err != nil {
		return err
	}

	return nil
}

func (w *Writer) writeGlossary(glossary entities.Glossary) error {
	doc := GlossaryDoc{
		Version:     glossary.Version,
		LastUpdated: glossary.LastUpdated,
		TotalTerms:  glossary.TotalTerms,
		Terms:       glossary.Terms,
		SearchIndex: BuildSearchIndex(glossary.Terms),
	}
	return w.writeJSON(FileGlossary, doc)
}

func (w *Writer) writeTerms(glossary entities.Glossary) error {
	doc := TermsDoc{
		Meta: meta(glossary),
		Data: make([]SlimTerm, 0, len(glossary.Terms)),
	}
	for _, t := range glossary.Terms {
		doc.Data = append(doc.Data, slim(t))
	}
	return w.writeJSON(FileTerms, doc)
}

func (w *Writer) writeCategories(glossary entities.Glossary) error {
	doc := CategoriesDoc{
		Meta: meta(glossary),
		Data: make(map[string][]SlimTerm),
	}
	for _, t := range glossary.Terms {
		key := string(t.Category)
		doc.Data[key] = append(doc.Data[key], slim(t))
	}
	return w.writeJSON(FileCategories, doc)
}

func (w *Writer) writeQuiz(
	glossary entities.Glossary,
	result *service.CompileResult,
	generatedAt time.Time,
) error {
	doc := QuizDoc{
		Version:       glossary.Version,
		Generated:     generatedAt,
		TotalPackages: len(result.Packages),
		Packages:      make(map[string]entities.QuizPackage, len(result.Packages)),
		Diagnostics:   result.Diagnostics,
	}
	for _, p := range result.Packages {
		doc.Packages[p.Key] = p
	}
	if err := w.writeJSON(FileQuiz, doc); err != nil {
		return err
	}

	// One standalone file per package, so clients can fetch a single tier.
	for _, p := range result.Packages {
		name := filepath.Join(DirQuizzes, p.Key+".json")
		if err := w.writeJSON(name, p); err != nil {
			return err
		}
	}

	return w.writeJSON(filepath.Join(DirQuizzes, FileQuizStats), buildStats(glossary, result))
}

func (w *Writer) writeAPIInfo(glossary entities.Glossary, generatedAt time.Time) error {
	doc := APIInfoDoc{
		Name:        "Crochet Glossary API",
		Description: "Comprehensive crochet terminology and quiz data",
		Version:     glossary.Version,
		Endpoints: map[string]string{
			FileGlossary:   "Complete glossary with search index",
			FileTerms:      "Terms only (lighter)",
			FileCategories: "Terms grouped by category",
			FileQuiz:       "Quiz packages and questions",
		},
		Usage: APIUsage{
			BaseURL: apiBaseURL,
			Example: apiBaseURL + FileTerms,
		},
		LastUpdated: generatedAt,
	}
	return w.writeJSON(FileAPIInfo, doc)
}

func buildStats(glossary entities.Glossary, result *service.CompileResult) QuizStatsDoc {
	stats := QuizStatsDoc{
		TotalQuestions:      result.TotalQuestions,
		DifficultyBreakdown: make(map[string]int),
	}

	for _, t := range glossary.Terms {
		if t.Instruction != "" {
			stats.TermsWithInstructions++
		}
		if t.Symbol != "" {
			stats.TermsWithSymbols++
		}
	}
	for _, c := range glossary.Categories() {
		stats.Categories = append(stats.Categories, string(c))
	}
	for _, p := range result.Packages {
		for _, q := range p.Questions {
			stats.DifficultyBreakdown[string(q.Difficulty)]++
		}
	}

	return stats
}

func meta(glossary entities.Glossary) Meta {
	return Meta{
		Version:     glossary.Version,
		LastUpdated: glossary.LastUpdated,
		TotalTerms:  glossary.TotalTerms,
	}
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
