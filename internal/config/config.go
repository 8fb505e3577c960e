// Package config loads lexdesk settings from defaults, an optional YAML
// file and LEXDESK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/deadsycode/lexdesk/internal/workflow"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate and Load failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultBaseURL is the API gateway the back office talks to.
const DefaultBaseURL = "https://gsoft-api-gateway-dtc3g9h8e7cpgagx.eastus-01.azurewebsites.net/api"

// Config holds all lexdesk settings.
type Config struct {
	API    APIConfig        `yaml:"api"`
	Log    LogConfig        `yaml:"log"`
	Report ReportConfig     `yaml:"report"`
	Layout workflow.Options `yaml:"layout"`
}

type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	Token      string `yaml:"token"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries int    `yaml:"max_retries"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Calls bool   `yaml:"calls"`
}

type ReportConfig struct {
	TopN int `yaml:"top_n"`
}

// DefaultConfig returns a Config with sensible defaults. Call logging is
// off by default.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:    DefaultBaseURL,
			TimeoutMs:  10000,
			MaxRetries: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
		Report: ReportConfig{
			TopN: 8,
		},
		Layout: workflow.DefaultOptions(),
	}
}

// Load reads configuration from an optional YAML file named by
// LEXDESK_CONFIG and then applies environment overrides. Malformed numeric
// environment values are ignored; a malformed file is an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("LEXDESK_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse config file: %v", ErrInvalidConfig, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEXDESK_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("LEXDESK_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("LEXDESK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.TimeoutMs = n
		}
	}
	if v := os.Getenv("LEXDESK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.API.MaxRetries = n
		}
	}
	if v := os.Getenv("LEXDESK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LEXDESK_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Calls = b
		}
	}
	if v := os.Getenv("LEXDESK_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Report.TopN = n
		}
	}
	if v := os.Getenv("LEXDESK_COLUMNS_PER_ROW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Layout.ColumnsPerRow = n
		}
	}
}

// Validate checks the settings that have no safe fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("%w: api base url is empty", ErrInvalidConfig)
	}
	if c.API.TimeoutMs <= 0 {
		return fmt.Errorf("%w: api timeout must be positive, got %d", ErrInvalidConfig, c.API.TimeoutMs)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
