package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// buildTermsKeyboard builds the pagination keyboard for the terms list.
func buildTermsKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildTermsPageCallback(page-1)))
	}

	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildTermsPageCallback(page+1)))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}

	return &kb
}

// buildCategoriesKeyboard builds one button per category present in the glossary.
func buildCategoriesKeyboard(categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(string(c), buildCategoryCallback(string(c))),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildQuizMenuKeyboard builds one button per available quiz package.
func buildQuizMenuKeyboard(quizService QuizService) tgbotapi.InlineKeyboardMarkup {
	keys := quizService.PackageKeys()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keys))
	for _, key := range keys {
		pkg, ok := quizService.Package(key)
		if !ok {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(pkg.Name, buildQuizStartCallback(key)),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildQuizAnswerKeyboard builds one button per option of a session question.
func buildQuizAnswerKeyboard(q entities.SessionQuestion, sessionID int64, questionNum int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, opt := range q.Options {
		label := truncateLabel(opt, 60)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(sessionID, questionNum, i)),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// truncateLabel shortens a button label to max runes, never splitting a
// multibyte character.
func truncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max-3]) + "..."
}

// buildQuizResultKeyboard offers another round after a finished session.
func buildQuizResultKeyboard(packageKey string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", buildQuizStartCallback(packageKey)),
		),
	)
}
