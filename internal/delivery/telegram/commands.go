package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/this4dani/crochet-glossary-api/internal/repository"
)

const searchResultsLimit = 5

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage()))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage()))
	}
}

// handleTerm looks a term up by its short code, falling back to search.
func (h *Handler) handleTerm(arg string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return h.send(newPlainMessage(chatID, msgUseTerm))
		}

		term, err := h.glossaryService.GetByID(ctx, arg)
		if err == nil {
			return h.send(newMessage(chatID, formatTerm(*term)))
		}
		if !errors.Is(err, repository.ErrTermNotFound) {
			return err
		}

		return h.handleSearch(arg)(ctx, chatID)
	}
}

func (h *Handler) handleRandom() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		term, err := h.glossaryService.GetRandom(ctx)
		if err != nil {
			return err
		}
		return h.send(newMessage(chatID, formatTerm(*term)))
	}
}

func (h *Handler) handleAll() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		terms, err := h.glossaryService.GetAll(ctx)
		if err != nil {
			return err
		}

		text, totalPages := buildTermsPage(terms, 0)
		if totalPages == 0 {
			return h.send(newPlainMessage(chatID, msgTermNotFound))
		}

		msg := newMessage(chatID, text)
		if kb := buildTermsKeyboard(0, totalPages); kb != nil {
			msg.ReplyMarkup = kb
		}
		return h.send(msg)
	}
}

func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		glossary := h.glossaryService.Glossary(ctx)

		msg := newPlainMessage(chatID, msgChooseCategory)
		msg.ReplyMarkup = buildCategoriesKeyboard(glossary.Categories())
		return h.send(msg)
	}
}

func (h *Handler) handleQuizMenu() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(h.quizService.PackageKeys()) == 0 {
			return h.send(newPlainMessage(chatID, msgQuizUnavailable))
		}

		msg := newPlainMessage(chatID, msgChooseQuiz)
		msg.ReplyMarkup = buildQuizMenuKeyboard(h.quizService)
		return h.send(msg)
	}
}

func (h *Handler) handleSearch(query string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if query == "" {
			return h.send(newPlainMessage(chatID, msgUseTerm))
		}

		terms, err := h.glossaryService.Search(ctx, query)
		if err != nil {
			return err
		}
		if len(terms) == 0 {
			return h.send(newPlainMessage(chatID, msgNoSearchResults))
		}

		// A single exact hit gets the full card.
		if len(terms) == 1 {
			return h.send(newMessage(chatID, formatTerm(terms[0])))
		}

		return h.send(newMessage(chatID, buildSearchResults(terms, searchResultsLimit)))
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}
