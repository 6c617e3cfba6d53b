package telegram

import (
	"fmt"
	"strings"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// buildTermsPage renders one page of the terms list and reports the page count.
func buildTermsPage(terms []entities.Term, page int) (string, int) {
	if len(terms) == 0 {
		return "", 0
	}

	totalPages := (len(terms) + termsPerPage - 1) / termsPerPage
	if page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * termsPerPage
	end := start + termsPerPage
	if end > len(terms) {
		end = len(terms)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 <b>Glossary</b> (page %d of %d)\n\n", page+1, totalPages)
	for _, t := range terms[start:end] {
		sb.WriteString(formatTermLine(t))
		sb.WriteString("\n")
	}
	sb.WriteString("\nUse /term CODE for details.")

	return sb.String(), totalPages
}

// buildCategoryList renders the terms of one category.
func buildCategoryList(category string, terms []entities.Term) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧺 <b>%s</b>\n\n", esc(category))
	for _, t := range terms {
		sb.WriteString(formatTermLine(t))
		sb.WriteString("\n")
	}
	sb.WriteString("\nUse /term CODE for details.")

	return sb.String()
}

// buildSearchResults renders up to limit matching terms.
func buildSearchResults(terms []entities.Term, limit int) string {
	if len(terms) > limit {
		terms = terms[:limit]
	}

	var sb strings.Builder
	sb.WriteString("🔎 <b>Matches</b>\n\n")
	for _, t := range terms {
		sb.WriteString(formatTermLine(t))
		sb.WriteString("\n")
	}
	sb.WriteString("\nUse /term CODE for details.")

	return sb.String()
}
