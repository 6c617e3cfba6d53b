package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`                // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`                  // Telegram API token loaded from environment
	GlossaryJSONPath string `mapstructure:"glossary_json_path"` // path to the authored glossary JSON file
	Export           Export `mapstructure:"export"`             // artifact export section
	Quiz             Quiz   `mapstructure:"quiz"`               // quiz generation section
	DB               DB     `mapstructure:"database"`           // database configuration section
}

// Export configures where and from which source the JSON artifacts are built.
type Export struct {
	OutputDir string `mapstructure:"output_dir"` // directory the JSON documents are written to
	Source    string `mapstructure:"source"`     // glossary source: "file" or "postgres"
	Version   string `mapstructure:"version"`    // version stamp when publishing from postgres
}

// Quiz configures question generation and the interactive practice sessions.
type Quiz struct {
	QuestionsPerTerm     int            `mapstructure:"questions_per_term"`     // max questions derived per eligible term
	DistractorCount      int            `mapstructure:"distractor_count"`       // wrong options sampled per question
	Seed                 int64          `mapstructure:"seed"`                   // seed for distractor sampling
	PackagesByDifficulty bool           `mapstructure:"packages_by_difficulty"` // group output into one package per tier
	Points               map[string]int `mapstructure:"points"`                 // points per difficulty tier
	SessionQuestions     int            `mapstructure:"session_questions"`      // questions per interactive bot session
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
// The Telegram token and database URL are optional here; the entrypoints
// that need them fail on their own when the values are absent.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("glossary_json_path", "assets/data/glossary.json")
	v.SetDefault("export.output_dir", "api")
	v.SetDefault("export.source", "file")
	v.SetDefault("export.version", "1.0.0")
	v.SetDefault("quiz.questions_per_term", 2)
	v.SetDefault("quiz.distractor_count", 3)
	v.SetDefault("quiz.seed", 1)
	v.SetDefault("quiz.packages_by_difficulty", true)
	v.SetDefault("quiz.points", map[string]int{
		"Beginner":     10,
		"Intermediate": 15,
		"Advanced":     20,
	})
	v.SetDefault("quiz.session_questions", 5)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
