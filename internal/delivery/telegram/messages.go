// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// Error messages.
const (
	msgTermNotFound      = "No term found for that code or name. Try /all to browse the glossary."
	msgUseTerm           = "Usage: /term SC (short code or part of a name)."
	msgNoSearchResults   = "Nothing matched. Try a shorter fragment, e.g. \"treble\" or \"sc\"."
	msgQuizUnavailable   = "Could not start a quiz, please try again later."
	msgNoQuestions       = "This pack has no questions yet. Pick another one."
	msgSessionExpired    = "This quiz has expired. Start a new one with /quiz."
	msgInternalError     = "Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Available commands:\n\n/term SC — look up a term\n/random — a random term\n/all — browse all terms\n/categories — browse by category\n/quiz — practice with a quiz"
	msgChooseQuiz        = "Choose a quiz pack:"
	msgChooseCategory    = "Choose a category:"
	msgCategoryEmpty     = "No terms in this category yet."
)

const termsPerPage = 5

// newMessage creates a message with HTML parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with HTML parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

func esc(s string) string {
	return html.EscapeString(s)
}

// welcomeMessage builds the /start greeting.
func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString("🧶 <b>Crochet Glossary Bot</b>\n\n")
	sb.WriteString("Look up crochet stitches, techniques and tools — with US and UK names, abbreviations and chart symbols — and practice them with quizzes.\n\n")
	sb.WriteString("Commands:\n")
	sb.WriteString("/term SC — look up a term by code or name\n")
	sb.WriteString("/random — a random term\n")
	sb.WriteString("/all — browse all terms\n")
	sb.WriteString("/categories — browse by category\n")
	sb.WriteString("/quiz — practice with a quiz\n\n")
	sb.WriteString("You can also just type a word (e.g. <i>treble</i>) to search.")

	return sb.String()
}

// formatTerm renders the full term card.
func formatTerm(t entities.Term) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s — %s</b>\n", esc(t.ID), esc(t.NameUS))
	fmt.Fprintf(&sb, "🇬🇧 UK: %s\n", esc(t.NameUK))

	if t.AbbreviationUS != "" || t.AbbreviationUK != "" {
		fmt.Fprintf(&sb, "Abbreviations: US <code>%s</code>, UK <code>%s</code>\n",
			esc(t.AbbreviationUS), esc(t.AbbreviationUK))
	}
	if t.Symbol != "" {
		fmt.Fprintf(&sb, "Symbol: <code>%s</code>\n", esc(t.Symbol))
	}

	fmt.Fprintf(&sb, "Category: %s · Difficulty: %s\n", esc(string(t.Category)), esc(string(t.Difficulty)))

	if t.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", esc(t.Description))
	}
	if t.Instruction != "" {
		fmt.Fprintf(&sb, "\n<b>How to:</b> %s\n", esc(t.Instruction))
	}
	if t.Status == entities.StatusDeprecated {
		sb.WriteString("\n⚠️ This term is deprecated.\n")
	}

	return sb.String()
}

// formatTermLine renders one line of a terms list.
func formatTermLine(t entities.Term) string {
	return fmt.Sprintf("<b>%s</b> — %s (UK: %s)", esc(t.ID), esc(t.NameUS), esc(t.NameUK))
}

// formatQuestion renders one session question with its progress header.
func formatQuestion(session *entities.QuizSession, q entities.SessionQuestion, num int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "❓ <b>Question %d of %d</b>\n\n", num, session.TotalQuestions)
	sb.WriteString(esc(q.Question.Text))
	fmt.Fprintf(&sb, "\n\n<i>%d points</i>", q.Question.Points)

	return sb.String()
}

// formatAnswerFeedback renders the verdict on one answered question.
func formatAnswerFeedback(answer *entities.QuizAnswer, points int) string {
	if answer.IsCorrect {
		return fmt.Sprintf("✅ Correct! +%d points", points)
	}
	return fmt.Sprintf("❌ Not quite. The correct answer is:\n<b>%s</b>", esc(answer.CorrectAnswer))
}

// formatQuizResult renders the final session summary.
func formatQuizResult(session *entities.QuizSession) string {
	var sb strings.Builder

	sb.WriteString("🏁 <b>Quiz finished!</b>\n\n")
	fmt.Fprintf(&sb, "Correct answers: %d of %d\n", session.CorrectAnswers, session.TotalQuestions)
	fmt.Fprintf(&sb, "Score: %d points", session.Score)

	return sb.String()
}
