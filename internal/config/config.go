package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	OrderService OrderServiceConfig `yaml:"order_service"`
	Board        BoardConfig        `yaml:"board"`
	KeyMappings  KeyMappings        `yaml:"key_mappings"`
}

// OrderServiceConfig holds the order-service connection settings.
type OrderServiceConfig struct {
	BaseURL             string `yaml:"base_url"`
	Token               string `yaml:"token"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

// BoardConfig holds board interaction tuning.
type BoardConfig struct {
	// PanGain amplifies pointer motion while panning the canvas.
	PanGain int `yaml:"pan_gain"`
	// ScrollStep is the indicator-click scroll distance in cells.
	ScrollStep int `yaml:"scroll_step"`
	// IndicatorThreshold hides the edge indicators within this many cells
	// of the rest position.
	IndicatorThreshold int `yaml:"indicator_threshold"`
	// OnPersistFailure selects what happens to an optimistic move whose
	// stage change could not be saved: "optimistic-until-reconciled"
	// (default) or "revert-on-failure".
	OnPersistFailure string `yaml:"on_persist_failure"`
}

// PollInterval returns the snapshot polling cadence.
func (c OrderServiceConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OrderService: OrderServiceConfig{
			BaseURL:             "http://localhost:8080",
			PollIntervalSeconds: 30,
		},
		Board: BoardConfig{
			PanGain:            2,
			ScrollStep:         30,
			IndicatorThreshold: 10,
			OnPersistFailure:   "optimistic-until-reconciled",
		},
		KeyMappings: DefaultKeyMappings(),
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. Environment variables
// override the order-service connection settings.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := getConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(configPath); readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			cfg.applyDefaults()
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save saves the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyDefaults fills in any zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()

	if c.OrderService.BaseURL == "" {
		c.OrderService.BaseURL = def.OrderService.BaseURL
	}
	if c.OrderService.PollIntervalSeconds <= 0 {
		c.OrderService.PollIntervalSeconds = def.OrderService.PollIntervalSeconds
	}
	if c.Board.PanGain < 1 {
		c.Board.PanGain = def.Board.PanGain
	}
	if c.Board.ScrollStep <= 0 {
		c.Board.ScrollStep = def.Board.ScrollStep
	}
	if c.Board.IndicatorThreshold <= 0 {
		c.Board.IndicatorThreshold = def.Board.IndicatorThreshold
	}
	if c.Board.OnPersistFailure == "" {
		c.Board.OnPersistFailure = def.Board.OnPersistFailure
	}
	c.KeyMappings.applyDefaults()
}

// applyEnv overrides connection settings from the environment. A .env file
// is loaded in main before this runs.
func (c *Config) applyEnv() {
	if url := os.Getenv("TSEKH_ORDER_SERVICE_URL"); url != "" {
		c.OrderService.BaseURL = url
	}
	if token := os.Getenv("TSEKH_ORDER_SERVICE_TOKEN"); token != "" {
		c.OrderService.Token = token
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tsekh", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tsekh", "config.yaml"), nil
}
