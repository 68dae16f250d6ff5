package config

import (
	"fmt"
	"os"
	"time"

	"wordofday/internal/domain"

	"github.com/joho/godotenv"
)

// Word list sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	Timezone    string
	WordsSource string
	WordsFile   string
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadWords()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// LoadWords reads only what is needed to select words, without the
// bot and database requirements
func LoadWords() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		Timezone:    getEnv("TIMEZONE", "Local"),
		WordsSource: getEnv("WORDS_SOURCE", SourceEmbedded),
		WordsFile:   os.Getenv("WORDS_FILE"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordofday"),
			User:     getEnv("DB_USER", "wordofday"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	switch cfg.WordsSource {
	case SourceEmbedded, SourcePostgres:
	case SourceFile:
		if cfg.WordsFile == "" {
			return nil, fmt.Errorf("WORDS_FILE is required when WORDS_SOURCE=file")
		}
	default:
		return nil, fmt.Errorf("WORDS_SOURCE must be one of %s, %s, %s; got %q",
			SourceEmbedded, SourceFile, SourcePostgres, cfg.WordsSource)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// Location resolves the local calendar used for day boundaries
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", domain.ErrClockResolution, c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
