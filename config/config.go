package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Database struct {
	Driver      string // sqlite|postgres
	Path        string // sqlite file, or :memory:
	PostgresURI string
	Debug       bool // log every SQL statement
}

type Config struct {
	Port      string
	LogLevel  string
	JWTSecret string

	Database Database

	RedisAddr      string
	CareerCacheTTL time.Duration

	MongoURI   string
	MongoDB    string
	SessionTTL time.Duration

	WebhookURL     string
	WebhookTimeout time.Duration

	PlanBucket  string
	STTEnabled  bool
	STTLanguage string
}

// Load reads the process environment. Call godotenv.Load first if a .env
// file should be honored.
func Load() (Config, error) {
	cfg := Config{
		Port:      envOr("PORT", "8080"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Database: Database{
			Driver:      strings.ToLower(envOr("DB_DRIVER", DriverSQLite)),
			Path:        envOr("DB_PATH", "data/career_counselor.db"),
			PostgresURI: os.Getenv("POSTGRES_URI"),
			Debug:       strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug"),
		},
		RedisAddr:   firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     envOr("MONGO_DB", "careercounsel"),
		WebhookURL:  os.Getenv("RASA_WEBHOOK_URL"),
		PlanBucket:  os.Getenv("PLAN_BUCKET"),
		STTLanguage: envOr("STT_LANGUAGE", "en-US"),
	}

	var err error
	if cfg.CareerCacheTTL, err = durationEnv("CAREER_CACHE_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 30*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.WebhookTimeout, err = durationEnv("WEBHOOK_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("STT_ENABLED"); v != "" {
		if cfg.STTEnabled, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("STT_ENABLED: %w", err)
		}
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Database.PostgresURI == "" {
			return Config{}, fmt.Errorf("POSTGRES_URI environment variable is not set (DB_DRIVER=postgres)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
