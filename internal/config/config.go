package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	App      AppConfig      `yaml:"app"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	RefreshExpiration string `yaml:"refresh_expiration"`
	AccessExpiration  string `yaml:"access_expiration"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"`
	LogLevel       string   `yaml:"log_level"`
	Timezone       string   `yaml:"timezone"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "timeclock",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		JWT: JWTConfig{
			RefreshExpiration: "168h",
			AccessExpiration:  "1h",
		},
		App: AppConfig{
			Port:           8080,
			Env:            "development",
			LogLevel:       "info",
			Timezone:       "America/Sao_Paulo",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load builds the configuration from defaults, then the optional YAML file
// named by CONFIG_PATH, then environment variables (a .env file is read first
// when present).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	config := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, config); err != nil {
			return nil, err
		}
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", strconv.Itoa(config.Database.Port)))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", strconv.Itoa(config.Database.MaxConns)))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", strconv.Itoa(config.Database.MinConns)))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", config.Database.Host),
		Port:     dbPort,
		User:     getEnv("DB_USER", config.Database.User),
		Password: getEnv("DB_PASSWORD", config.Database.Password),
		Name:     getEnv("DB_NAME", config.Database.Name),
		SSLMode:  getEnv("DB_SSL_MODE", config.Database.SSLMode),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", strconv.Itoa(config.App.Port)))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", config.App.Env),
		LogLevel:       getEnv("LOG_LEVEL", config.App.LogLevel),
		Timezone:       getEnv("APP_TIMEZONE", config.App.Timezone),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", config.App.AllowedOrigins),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", config.JWT.Secret),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", config.JWT.RefreshExpiration),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", config.JWT.AccessExpiration),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the time zone punches are recorded in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, falling back to UTC", "timezone", c.App.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
