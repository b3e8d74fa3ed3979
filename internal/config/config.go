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
	Env              string `mapstructure:"env"` // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`   // Telegram API token loaded from environment
	Trivia           Trivia `mapstructure:"trivia"`
	Quiz             Quiz   `mapstructure:"quiz"`
}

// Trivia contains trivia API client parameters.
type Trivia struct {
	BaseURL string        `mapstructure:"base_url"` // trivia API base URL
	Timeout time.Duration `mapstructure:"timeout"`  // per-request timeout
}

// Quiz contains defaults for a freshly opened quiz setup.
type Quiz struct {
	DefaultDifficulty string `mapstructure:"default_difficulty"` // easy, medium or hard
	DefaultCount      int    `mapstructure:"default_count"`      // default number of questions
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("trivia.base_url", "https://the-trivia-api.com/v2")
	v.SetDefault("trivia.timeout", "10s")
	v.SetDefault("quiz.default_difficulty", "medium")
	v.SetDefault("quiz.default_count", 10)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("trivia.base_url", "TRIVIA_API_URL")
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
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
