package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	cd := decodeCallback(cb.Data)

	var err error
	switch cd.Action {
	case actionTerms:
		err = h.handleTermsCallback(ctx, cb, cd)
	case actionCategory:
		err = h.handleCategoryCallback(ctx, cb, cd)
	case actionQuiz:
		err = h.handleQuizCallback(ctx, cb, cd)
	default:
		return
	}

	if err != nil {
		h.logger.Error("callback error",
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.sendError(cb.Message.Chat.ID, msgInternalError)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleTermsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	if len(cd.Params) != 1 {
		return fmt.Errorf("invalid terms callback data: %s", cb.Data)
	}
	page, err := strconv.Atoi(cd.Params[0])
	if err != nil || page < 0 {
		return fmt.Errorf("invalid page in callback: %s", cb.Data)
	}

	terms, err := h.glossaryService.GetAll(ctx)
	if err != nil {
		return err
	}

	text, totalPages := buildTermsPage(terms, page)
	if totalPages == 0 || page >= totalPages {
		return nil // stale pagination tap
	}

	edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, text)
	if kb := buildTermsKeyboard(page, totalPages); kb != nil {
		edit.ReplyMarkup = kb
	}
	return h.send(edit)
}

func (h *Handler) handleCategoryCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	if len(cd.Params) != 1 {
		return fmt.Errorf("invalid category callback data: %s", cb.Data)
	}

	category := entities.Category(cd.Params[0])
	terms, err := h.glossaryService.GetByCategory(ctx, category)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, msgCategoryEmpty))
	}

	return h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, buildCategoryList(cd.Params[0], terms)))
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	if len(cd.Params) == 0 {
		return fmt.Errorf("invalid quiz callback data: %s", cb.Data)
	}

	switch cd.Params[0] {
	case quizStart:
		return h.handleQuizStart(ctx, cb, cd)
	case quizAnswer:
		return h.handleQuizAnswer(ctx, cb, cd)
	default:
		return fmt.Errorf("unknown quiz sub-action: %s", cb.Data)
	}
}

func (h *Handler) handleQuizStart(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	if len(cd.Params) != 2 {
		return fmt.Errorf("invalid quiz start callback data: %s", cb.Data)
	}
	packageKey := cd.Params[1]

	session, questions, err := h.quizService.StartQuiz(ctx, cb.From.ID, packageKey)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			return h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, msgNoQuestions))
		}
		return err
	}

	h.quizStorage.Store(session.ID, questions)

	edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, formatQuestion(session, questions[0], 1))
	kb := buildQuizAnswerKeyboard(questions[0], session.ID, 1)
	edit.ReplyMarkup = &kb
	return h.send(edit)
}

func (h *Handler) handleQuizAnswer(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	if len(cd.Params) != 4 {
		return fmt.Errorf("invalid quiz answer callback data: %s", cb.Data)
	}

	sessionID, err1 := strconv.ParseInt(cd.Params[1], 10, 64)
	questionNum, err2 := strconv.Atoi(cd.Params[2])
	answerIndex, err3 := strconv.Atoi(cd.Params[3])
	if err1 != nil || err2 != nil || err3 != nil || questionNum < 1 || answerIndex < 0 {
		return fmt.Errorf("invalid quiz answer callback values: %s", cb.Data)
	}

	session, err := h.quizService.GetSession(ctx, sessionID, cb.From.ID)
	if err != nil {
		return h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, msgSessionExpired))
	}
	if session.SessionStatus != "active" || questionNum != session.CurrentQuestionNum {
		return nil // stale tap on an already answered question
	}

	questions := h.quizStorage.Get(session.ID)
	if len(questions) == 0 || questionNum > len(questions) {
		return h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, msgSessionExpired))
	}
	q := questions[questionNum-1]

	answer, err := h.quizService.CheckAndSaveAnswer(ctx, cb.From.ID, session, q, answerIndex)
	if err != nil {
		return err
	}

	text := formatAnswerFeedback(answer, q.Question.Points)

	if session.SessionStatus == "completed" {
		h.quizStorage.Delete(session.ID)

		edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, text+"\n\n"+formatQuizResult(session))
		kb := buildQuizResultKeyboard(session.PackageKey)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}

	next := questions[session.CurrentQuestionNum-1]
	edit := newEdit(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		text+"\n\n"+formatQuestion(session, next, session.CurrentQuestionNum),
	)
	kb := buildQuizAnswerKeyboard(next, session.ID, session.CurrentQuestionNum)
	edit.ReplyMarkup = &kb
	return h.send(edit)
}
