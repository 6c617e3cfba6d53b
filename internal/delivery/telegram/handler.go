package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type GlossaryService interface {
	Glossary(ctx context.Context) entities.Glossary
	GetByID(ctx context.Context, id string) (*entities.Term, error)
	GetRandom(ctx context.Context) (*entities.Term, error)
	GetAll(ctx context.Context) ([]entities.Term, error)
	GetByCategory(ctx context.Context, category entities.Category) ([]entities.Term, error)
	Search(ctx context.Context, query string) ([]entities.Term, error)
}

type QuizService interface {
	PackageKeys() []string
	Package(key string) (entities.QuizPackage, bool)
	StartQuiz(ctx context.Context, userID int64, packageKey string) (*entities.QuizSession, []entities.SessionQuestion, error)
	GetSession(ctx context.Context, sessionID, userID int64) (*entities.QuizSession, error)
	CheckAndSaveAnswer(ctx context.Context, userID int64, session *entities.QuizSession, q entities.SessionQuestion, selectedIndex int) (*entities.QuizAnswer, error)
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	glossaryService GlossaryService
	userService     UserService
	quizService     QuizService
	quizStorage     *storage.QuizStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	glossaryService GlossaryService,
	userService UserService,
	quizService QuizService,
	quizStorage *storage.QuizStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		glossaryService: glossaryService,
		userService:     userService,
		quizService:     quizService,
		quizStorage:     quizStorage,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	msg := update.Message
	h.logger.Debug("update received",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("text", msg.Text),
	)

	if msg.From != nil {
		if err := h.userService.EnsureUser(ctx, msg.From.ID, msg.Chat.ID); err != nil {
			h.logger.Error("ensure user failed",
				zap.Int64("user_id", msg.From.ID),
				zap.Error(err),
			)
		}
	}

	chatID := msg.Chat.ID
	var fn HandlerFunc

	switch msg.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "term":
		fn = h.handleTerm(msg.CommandArguments())
	case "random":
		fn = h.handleRandom()
	case "all":
		fn = h.handleAll()
	case "categories":
		fn = h.handleCategories()
	case "quiz":
		fn = h.handleQuizMenu()
	case "":
		// Plain text is treated as a glossary search.
		fn = h.handleSearch(strings.TrimSpace(msg.Text))
	default:
		fn = h.handleUnknown()
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	_, err := h.bot.Send(c)
	return err
}

func (h *Handler) sendError(chatID int64, text string) {
	if err := h.send(newPlainMessage(chatID, text)); err != nil {
		h.logger.Error("send error message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
