package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var envVars = []string{
	"BOXRANK_PORT", "BOXRANK_METRICS_PORT", "BOXRANK_DATABASE_URL",
	"BOXRANK_HERMES_URL", "BOXRANK_CATALOG_PATH", "BOXRANK_PENALTY_POLICY",
	"BOXRANK_CRITICAL_MISS_PENALTY", "BOXRANK_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimit != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimit)
	}
	if cfg.Server.HistoryLimit != 50 {
		t.Errorf("expected history limit 50, got %d", cfg.Server.HistoryLimit)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected no database by default, got %s", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected no hermes by default, got %s", cfg.Hermes.URL)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected built-in catalog by default, got %s", cfg.Catalog.Path)
	}
	if cfg.Scoring.PenaltyPolicy != "raw" {
		t.Errorf("expected penalty policy 'raw', got '%s'", cfg.Scoring.PenaltyPolicy)
	}
	if cfg.Scoring.CriticalMissPenalty != 50 {
		t.Errorf("expected penalty 50, got %f", cfg.Scoring.CriticalMissPenalty)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected slog info, got %v", cfg.SlogLevel())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BOXRANK_PORT", "9000")
	t.Setenv("BOXRANK_METRICS_PORT", "9001")
	t.Setenv("BOXRANK_DATABASE_URL", "postgres://localhost/boxrank_test")
	t.Setenv("BOXRANK_HERMES_URL", "nats://nats:4222")
	t.Setenv("BOXRANK_CATALOG_PATH", "/etc/boxrank/catalog.yaml")
	t.Setenv("BOXRANK_PENALTY_POLICY", "star")
	t.Setenv("BOXRANK_CRITICAL_MISS_PENALTY", "75.5")
	t.Setenv("BOXRANK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Database.URL != "postgres://localhost/boxrank_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Catalog.Path != "/etc/boxrank/catalog.yaml" {
		t.Errorf("expected catalog path, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Scoring.PenaltyPolicy != "star" {
		t.Errorf("expected star policy, got '%s'", cfg.Scoring.PenaltyPolicy)
	}
	if cfg.Scoring.CriticalMissPenalty != 75.5 {
		t.Errorf("expected penalty 75.5, got %f", cfg.Scoring.CriticalMissPenalty)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected slog debug, got %v", cfg.SlogLevel())
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "boxrank.yaml")
	body := `
server:
  port: 7000
scoring:
  penalty_policy: none
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Scoring.PenaltyPolicy != "none" {
		t.Errorf("expected none policy, got '%s'", cfg.Scoring.PenaltyPolicy)
	}
	if cfg.Scoring.CriticalMissPenalty != 50 {
		t.Errorf("expected default penalty kept, got %f", cfg.Scoring.CriticalMissPenalty)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("expected slog warn, got %v", cfg.SlogLevel())
	}
}

func TestLoadBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
