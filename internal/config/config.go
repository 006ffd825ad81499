package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `json:"api"`
	Display DisplayConfig `json:"display"`
}

// APIConfig holds MentalPitch backend settings
type APIConfig struct {
	BaseURL  string `json:"base_url"`
	ClientID string `json:"client_id"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DefaultPeriod string `json:"default_period"` // "week", "month", or "year"
	ChartWidth    int    `json:"chart_width"`
	ChartHeight   int    `json:"chart_height"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			DefaultPeriod: "week",
			ChartWidth:    60,
			ChartHeight:   8,
		},
	}
}

// Load reads the configuration from ~/.mentalpitch/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.DefaultPeriod == "" {
		cfg.Display.DefaultPeriod = defaults.Display.DefaultPeriod
	}
	if cfg.Display.ChartWidth == 0 {
		cfg.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.mentalpitch/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		API: APIConfig{
			BaseURL:  "https://api.mentalpitch.app",
			ClientID: "YOUR_CLIENT_ID",
		},
		Display: DisplayConfig{
			DefaultPeriod: "week",
			ChartWidth:    60,
			ChartHeight:   8,
		},
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.ClientID == "" || c.API.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("api.client_id is required - get it from your MentalPitch account settings")
	}

	switch c.Display.DefaultPeriod {
	case "", "week", "month", "year":
	default:
		return fmt.Errorf("display.default_period must be \"week\", \"month\", or \"year\", got %q", c.Display.DefaultPeriod)
	}

	if c.Display.ChartWidth < 0 || c.Display.ChartHeight < 0 {
		return errors.New("display chart dimensions must be positive")
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".mentalpitch", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".mentalpitch"), nil
}
