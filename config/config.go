package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FavoriteIDs holds the four independent favorite ID lists, by collection.
type FavoriteIDs struct {
	LiveCategories []string `yaml:"live_categories"`
	LiveStreams    []string `yaml:"live_streams"`
	VODCategories  []string `yaml:"vod_categories"`
	VODStreams     []string `yaml:"vod_streams"`
}

// Config holds the complete application configuration
type Config struct {
	// Active processing modes: "merica", "sports", "all-english"
	Modes []string `yaml:"modes"`

	// Display timezone for resolving embedded event times (IANA name)
	DisplayTimezone string `yaml:"display_timezone"`

	// Connected provider account display name, used only by the
	// named-account override rules
	AccountName string `yaml:"account_name"`

	// Path to the YAML rule set (generic labels + account overrides).
	// Missing file falls back to built-in defaults.
	RulesFile string `yaml:"rules_file"`

	// Worker count for parallel classification; 0 means one per CPU
	Workers int `yaml:"workers"`

	// Log level: DEBUG, INFO, WARN, ERROR
	LogLevel string `yaml:"log_level"`

	// Liveness boundary tuning
	Liveness struct {
		OvertimeBuffer time.Duration `yaml:"overtime_buffer"`
		FallbackWindow time.Duration `yaml:"fallback_window"`
	} `yaml:"liveness"`

	// Favorite record IDs
	Favorites FavoriteIDs `yaml:"favorites"`
}

// knownModes are the accepted values for the modes list.
var knownModes = map[string]bool{
	"merica":      true,
	"sports":      true,
	"all-english": true,
	"allenglish":  true,
	"english":     true,
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	for _, mode := range c.Modes {
		if !knownModes[strings.ToLower(strings.TrimSpace(mode))] {
			errors = append(errors, fmt.Sprintf("unknown processing mode %q", mode))
		}
	}

	if c.DisplayTimezone != "" {
		if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
			errors = append(errors, fmt.Sprintf("invalid display timezone %q", c.DisplayTimezone))
		}
	}

	if c.Workers < 0 {
		errors = append(errors, "workers must not be negative")
	}

	if c.Liveness.OvertimeBuffer < 0 {
		errors = append(errors, "liveness overtime buffer must not be negative")
	}
	if c.Liveness.FallbackWindow < 0 {
		errors = append(errors, "liveness fallback window must not be negative")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errors = append(errors, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.Modes = nil // no filtering by default
	cfg.DisplayTimezone = "UTC"
	cfg.RulesFile = "rules.yaml"
	cfg.Workers = 0
	cfg.LogLevel = "INFO"

	cfg.Liveness.OvertimeBuffer = 30 * time.Minute
	cfg.Liveness.FallbackWindow = 4 * time.Hour

	return cfg
}

// LoadFromFile reads configuration from a YAML file on top of defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies
// environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("PROCESSING_MODES"); val != "" {
		cfg.Modes = nil
		for _, mode := range strings.Split(val, ",") {
			if mode = strings.TrimSpace(mode); mode != "" {
				cfg.Modes = append(cfg.Modes, mode)
			}
		}
	}
	if val := os.Getenv("DISPLAY_TIMEZONE"); val != "" {
		cfg.DisplayTimezone = val
	}
	if val := os.Getenv("ACCOUNT_NAME"); val != "" {
		cfg.AccountName = val
	}
	if val := os.Getenv("RULES_FILE"); val != "" {
		cfg.RulesFile = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("WORKERS"); val != "" {
		workers, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WORKERS value %q: %w", val, err)
		}
		cfg.Workers = workers
	}
	if val := os.Getenv("LIVENESS_OVERTIME_BUFFER"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid LIVENESS_OVERTIME_BUFFER value %q: %w", val, err)
		}
		cfg.Liveness.OvertimeBuffer = d
	}
	if val := os.Getenv("LIVENESS_FALLBACK_WINDOW"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid LIVENESS_FALLBACK_WINDOW value %q: %w", val, err)
		}
		cfg.Liveness.FallbackWindow = d
	}

	return nil
}
