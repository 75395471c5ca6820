package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "CAREER_CACHE_TTL", "WEBHOOK_TIMEOUT", "STT_ENABLED", "REDIS_ADDR", "REDIS_URI", "REDIS_URL", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Database.Driver != DriverSQLite || cfg.Database.Path != "data/career_counselor.db" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.CareerCacheTTL != time.Hour || cfg.WebhookTimeout != 10*time.Second || cfg.STTEnabled {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URI", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("WEBHOOK_TIMEOUT", "3s")
	t.Setenv("STT_ENABLED", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RedisAddr != "redis://localhost:6379/0" || cfg.WebhookTimeout != 3*time.Second || !cfg.STTEnabled {
		t.Fatalf("overrides not applied %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URI", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing POSTGRES_URI error")
	}
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CAREER_CACHE_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected duration error")
	}
}

func TestOpenDatabaseInMemory(t *testing.T) {
	db, err := OpenDatabase(Database{Driver: DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("foreign keys not enabled")
	}
}
