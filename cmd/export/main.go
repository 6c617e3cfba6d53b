package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/this4dani/crochet-glossary-api/internal/config"
	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/export"
	"github.com/this4dani/crochet-glossary-api/internal/infra/postgres"
	pgrepo "github.com/this4dani/crochet-glossary-api/internal/infra/postgres/repository"
	"github.com/this4dani/crochet-glossary-api/internal/logger"
	"github.com/this4dani/crochet-glossary-api/internal/repository"
	"github.com/this4dani/crochet-glossary-api/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	glossary, err := loadGlossary(ctx, cfg)
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

	result, err := service.Compile(glossary, compilerCfg)
	if err != nil {
		zapLogger.Fatal("quiz generation failed", zap.Error(err))
	}

	for _, d := range result.Diagnostics {
		zapLogger.Warn("term skipped",
			zap.String("term_id", d.TermID),
			zap.String("reason", d.Reason),
		)
	}

	writer := export.NewWriter(cfg.Export.OutputDir)
	if err := writer.WriteAll(glossary, result, time.Now()); err != nil {
		zapLogger.Fatal("write artifacts", zap.Error(err))
	}

	zapLogger.Info("export complete",
		zap.Int("terms", glossary.TotalTerms),
		zap.Int("questions", result.TotalQuestions),
		zap.Int("packages", len(result.Packages)),
		zap.Int("skipped_terms", len(result.Diagnostics)),
		zap.String("output_dir", cfg.Export.OutputDir),
	)
}

// loadGlossary reads the glossary from the configured source: the authored
// JSON asset, or the Postgres authoring store.
func loadGlossary(ctx context.Context, cfg *config.Config) (entities.Glossary, error) {
	switch cfg.Export.Source {
	case "postgres":
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return entities.Glossary{}, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return entities.Glossary{}, err
		}
		defer pool.Close()

		return pgrepo.NewTermRepository(pool).GetGlossary(ctx, cfg.Export.Version)

	default:
		repo, err := repository.NewGlossaryRepository(cfg.GlossaryJSONPath)
		if err != nil {
			return entities.Glossary{}, err
		}
		return repo.Glossary(), nil
	}
}
