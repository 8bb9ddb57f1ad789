package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.OrderService.PollIntervalSeconds != 30 {
		t.Errorf("expected poll interval 30, got %d", cfg.OrderService.PollIntervalSeconds)
	}
	if cfg.OrderService.PollInterval() != 30*time.Second {
		t.Errorf("expected 30s poll duration, got %v", cfg.OrderService.PollInterval())
	}
	if cfg.Board.PanGain != 2 {
		t.Errorf("expected pan gain 2, got %d", cfg.Board.PanGain)
	}
	if cfg.Board.OnPersistFailure != "optimistic-until-reconciled" {
		t.Errorf("unexpected persist failure policy %q", cfg.Board.OnPersistFailure)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("expected quit binding q, got %q", cfg.KeyMappings.Quit)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TSEKH_ORDER_SERVICE_URL", "")
	t.Setenv("TSEKH_ORDER_SERVICE_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	def := Default()
	if cfg.OrderService.BaseURL != def.OrderService.BaseURL {
		t.Errorf("expected default base url, got %q", cfg.OrderService.BaseURL)
	}
	if cfg.Board.ScrollStep != def.Board.ScrollStep {
		t.Errorf("expected default scroll step, got %d", cfg.Board.ScrollStep)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TSEKH_ORDER_SERVICE_URL", "")
	t.Setenv("TSEKH_ORDER_SERVICE_TOKEN", "")

	configDir := filepath.Join(dir, "tsekh")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	partial := "order_service:\n  base_url: https://orders.example.com\nboard:\n  pan_gain: 3\nkey_mappings:\n  quit: x\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.OrderService.BaseURL != "https://orders.example.com" {
		t.Errorf("expected file base url, got %q", cfg.OrderService.BaseURL)
	}
	if cfg.Board.PanGain != 3 {
		t.Errorf("expected pan gain 3, got %d", cfg.Board.PanGain)
	}
	if cfg.Board.ScrollStep != 30 {
		t.Errorf("expected default scroll step, got %d", cfg.Board.ScrollStep)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("expected quit binding x, got %q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.Help != "?" {
		t.Errorf("expected default help binding, got %q", cfg.KeyMappings.Help)
	}
}

func TestEnvOverridesConnection(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TSEKH_ORDER_SERVICE_URL", "https://env.example.com")
	t.Setenv("TSEKH_ORDER_SERVICE_TOKEN", "secret-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.OrderService.BaseURL != "https://env.example.com" {
		t.Errorf("expected env base url, got %q", cfg.OrderService.BaseURL)
	}
	if cfg.OrderService.Token != "secret-token" {
		t.Errorf("expected env token, got %q", cfg.OrderService.Token)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TSEKH_ORDER_SERVICE_URL", "")
	t.Setenv("TSEKH_ORDER_SERVICE_TOKEN", "")

	cfg := Default()
	cfg.Board.OnPersistFailure = "revert-on-failure"
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.Board.OnPersistFailure != "revert-on-failure" {
		t.Errorf("expected saved policy, got %q", loaded.Board.OnPersistFailure)
	}
}
