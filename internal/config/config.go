package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port      string `yaml:"port" env:"PORT"`
		Mode      string `yaml:"mode" env:"SERVER_MODE"`
		StaticDir string `yaml:"static_dir" env:"STATIC_DIR"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		ConnectRetries  int    `yaml:"connect_retries" env:"DB_CONNECT_RETRIES"`
		ConnectBackoff  string `yaml:"connect_backoff" env:"DB_CONNECT_BACKOFF"`
	} `yaml:"database"`

	CORS struct {
		AllowedOrigins       []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
		PreviewOriginPattern string   `yaml:"preview_origin_pattern" env:"CORS_PREVIEW_ORIGIN_PATTERN"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled          bool   `yaml:"enabled" env:"SEED_ENABLED"`
		EvaluatorName    string `yaml:"evaluator_username" env:"SEED_EVALUATOR_USERNAME"`
		EvaluatorEmail   string `yaml:"evaluator_email" env:"SEED_EVALUATOR_EMAIL"`
		SampleProfessors bool   `yaml:"sample_professors" env:"SEED_SAMPLE_PROFESSORS"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; environment variables alone are enough in production.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "siseval"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.ConnectRetries = 5
	config.Database.ConnectBackoff = "500ms"

	// CORS defaults
	config.CORS.AllowedOrigins = []string{
		"https://sis-eval.vercel.app",
		"https://sis-eval-morefews-projects.vercel.app",
		"http://localhost:5173",
		"http://localhost:5000",
		"http://localhost:5001",
	}
	config.CORS.PreviewOriginPattern = `^https://sis-eval-[a-z0-9]+-morefews-projects\.vercel\.app$`

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Seed defaults
	config.Seed.Enabled = true
	config.Seed.EvaluatorName = "evaluador"
	config.Seed.EvaluatorEmail = "evaluador@sis-eval.app"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	if config.Database.URL != "" {
		if _, err := url.Parse(config.Database.URL); err != nil {
			return fmt.Errorf("invalid database url: %w", err)
		}
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnectBackoff); err != nil {
		return fmt.Errorf("invalid database connect backoff: %w", err)
	}

	if config.Database.ConnectRetries < 0 {
		return fmt.Errorf("database connect retries cannot be negative")
	}

	if config.CORS.PreviewOriginPattern != "" {
		if _, err := regexp.Compile(config.CORS.PreviewOriginPattern); err != nil {
			return fmt.Errorf("invalid CORS preview origin pattern: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string. A full
// DATABASE_URL wins over the individual host fields.
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// DatabaseHost returns the host to report in logs without exposing credentials.
func (c *Config) DatabaseHost() string {
	if c.Database.URL == "" {
		return c.Database.Host
	}
	parsed, err := url.Parse(c.Database.URL)
	if err != nil {
		return "unknown"
	}
	return parsed.Host
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
