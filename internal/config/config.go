package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Debug            bool     `mapstructure:"debug"`    // verbose Telegram client logging
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB       `mapstructure:"database"` // database configuration section
	Bot              Bot      `mapstructure:"bot"`
	Game             Game     `mapstructure:"game"`
	Sessions         Sessions `mapstructure:"sessions"`
	Seed             Seed     `mapstructure:"seed"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Bot configures the update polling loop.
type Bot struct {
	PollTimeout    int           `mapstructure:"poll_timeout"` // long polling timeout in seconds
	HandshakeRetry time.Duration `mapstructure:"handshake_retry"`
	ErrorBackoff   time.Duration `mapstructure:"error_backoff"`
}

type Game struct {
	SentenceDelay   time.Duration `mapstructure:"sentence_delay"`
	PracticeTestURL string        `mapstructure:"practice_test_url"` // fmt pattern, %s is the lower-case level
}

type Sessions struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron expression
}

type Seed struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values from .env never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("debug", false)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("bot.poll_timeout", 30)
	v.SetDefault("bot.handshake_retry", "5s")
	v.SetDefault("bot.error_backoff", "3s")
	v.SetDefault("game.sentence_delay", "2s")
	v.SetDefault("game.practice_test_url", "https://your-testing-platform.com/level-%s")
	v.SetDefault("sessions.idle_ttl", "6h")
	v.SetDefault("sessions.sweep_schedule", "@every 15m")
	v.SetDefault("seed.catalog_path", "assets/data/catalog.json")

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
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return &cfg, nil
}
