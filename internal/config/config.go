package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"quizbank-service/internal/domain"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Auth struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	Session struct {
		TTL    string `yaml:"ttl"`
		Cookie string `yaml:"cookie"`
	} `yaml:"session"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	// Quizzes seeds the quiz bank at startup.
	Quizzes []domain.Quiz `yaml:"quizzes"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// LogLevel maps the configured level name; unknown names mean info.
func LogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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

// CookieName returns the session cookie name, defaulting to "quiz_session".
func (c Config) CookieName() string {
	if c.Session.Cookie == "" {
		return "quiz_session"
	}
	return c.Session.Cookie
}
