package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	YouTube  YouTubeConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"tubenotes"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// GeminiConfig holds generation service configuration
type GeminiConfig struct {
	APIKey         string `envconfig:"GEMINI_API_KEY"`
	BaseURL        string `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
	Model          string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`
	TimeoutSeconds int    `envconfig:"GEMINI_TIMEOUT_SECONDS" default:"120"`
	// ChunkSize bounds how many characters of transcript go into a single
	// generation request.
	ChunkSize int `envconfig:"FORMAT_CHUNK_SIZE" default:"30000"`
}

// YouTubeConfig holds captioning service configuration
type YouTubeConfig struct {
	BaseURL        string `envconfig:"YOUTUBE_BASE_URL" default:"https://www.youtube.com"`
	PreferredLang  string `envconfig:"YOUTUBE_PREFERRED_LANG" default:"en"`
	TimeoutSeconds int    `envconfig:"YOUTUBE_TIMEOUT_SECONDS" default:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Gemini.ChunkSize <= 0 {
		return fmt.Errorf("FORMAT_CHUNK_SIZE must be positive")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
