package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/this4dani/crochet-glossary-api/internal/config"
	"github.com/this4dani/crochet-glossary-api/internal/delivery/telegram"
	"github.com/this4dani/crochet-glossary-api/internal/infra/postgres"
	pgrepo "github.com/this4dani/crochet-glossary-api/internal/infra/postgres/repository"
	"github.com/this4dani/crochet-glossary-api/internal/logger"
	"github.com/this4dani/crochet-glossary-api/internal/repository"
	"github.com/this4dani/crochet-glossary-api/internal/service"
	"github.com/this4dani/crochet-glossary-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.TelegramAPIToken == "" {
		log.Fatal(config.ErrMissingEnvironmentVariables)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.Panic(err)
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "term",
			Description: "Look up a term by code or name",
		},
		{
			Command:     "random",
			Description: "Get a random term",
		},
		{
			Command:     "all",
			Description: "Browse all terms",
		},
		{
			Command:     "categories",
			Description: "Browse terms by category",
		},
		{
			Command:     "quiz",
			Description: "Practice with a quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	zapLogger.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Glossary and compiled quiz packages.
	glossaryRepo, err := repository.NewGlossaryRepository(cfg.GlossaryJSONPath)
	if err != nil {
		zapLogger.Fatal("load glossary", zap.Error(err))
	}

	compilerCfg := service.NewCompilerConfig(
		cfg.Quiz.QuestionsPerTerm,
		cfg.Quiz.DistractorCount,
		cfg.Quiz.PackagesByDifficulty,
		cfg.Quiz.Points,
		cfg.Quiz.Seed,
	)
	result, err := service.Compile(glossaryRepo.Glossary(), compilerCfg)
	if err != nil {
		zapLogger.Fatal("quiz generation failed", zap.Error(err))
	}

	// Database pool and repositories.
	dsn, err := cfg.DB.DSN()
	if err != nil {
		zapLogger.Fatal("database url", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := pgrepo.NewUserRepository(pool)
	quizRepo := pgrepo.NewQuizRepository(pool)

	glossaryService := service.NewGlossaryService(glossaryRepo)
	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(result, quizRepo, cfg.Quiz.SessionQuestions)

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		glossaryService,
		userService,
		quizService,
		storage.NewQuizStorage(),
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zapLogger.Fatal("handler stopped", zap.Error(err))
	}

	zapLogger.Info("shutdown signal received")
}
