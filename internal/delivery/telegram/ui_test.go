package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		max   int
		want  string
	}{
		{"short untouched", "chain", 60, "chain"},
		{"exact length untouched", strings.Repeat("a", 60), 60, strings.Repeat("a", 60)},
		{"long ascii", strings.Repeat("a", 61), 60, strings.Repeat("a", 57) + "..."},
		{
			"multibyte runes survive",
			strings.Repeat("•", 61),
			60,
			strings.Repeat("•", 57) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.label, tt.max)
			if got != tt.want {
				t.Errorf("truncateLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateLabel(%q) produced invalid UTF-8", tt.label)
			}
		})
	}
}

func TestBuildQuizAnswerKeyboardLabels(t *testing.T) {
	long := "Yarn over, insert the hook into the stitch, yarn over, pull up a loop • then finish."
	q := entities.SessionQuestion{
		Question: entities.Question{Answer: long, Distractors: []string{"•", "chain"}},
		Options:  []string{long, "•", "chain"},
	}

	kb := buildQuizAnswerKeyboard(q, 1, 1)

	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("got %d option rows, want 3", len(kb.InlineKeyboard))
	}
	for _, row := range kb.InlineKeyboard {
		label := row[0].Text
		if !utf8.ValidString(label) {
			t.Errorf("button label %q is not valid UTF-8", label)
		}
		if utf8.RuneCountInString(label) > 60 {
			t.Errorf("button label %q exceeds 60 runes", label)
		}
	}
}
