// Package config loads the backend credential and runtime settings once at start.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider   = "gemini"
	DefaultModel      = "gemini-1.5-flash"
	DefaultServerAddr = ":8080"
	DefaultLogLevel   = "info"
)

// Config holds the generation backend settings.
type Config struct {
	Provider   string `json:"provider,omitempty" yaml:"provider,omitempty" env:"LLM_PROVIDER" validate:"oneof=gemini openai deepseek mock"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty" env:"LLM_MODEL" validate:"required"`
	APIKey     string `json:"api_key,omitempty" yaml:"api_key,omitempty" env:"API_KEY"`
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty" env:"LLM_BASE_URL" validate:"omitempty,url"`
	ServerAddr string `json:"server_addr,omitempty" yaml:"server_addr,omitempty" env:"SERVER_ADDR"`
	LogLevel   string `json:"log_level,omitempty" yaml:"log_level,omitempty" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// ConfigError reports a missing or invalid setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Load reads .env from the working directory, then the optional config file at
// path (JSON or YAML by extension), then environment variables. Unset fields
// fall back to defaults. The result is validated.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.ServerAddr == "" {
		c.ServerAddr = DefaultServerAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.Provider = strings.ToLower(c.Provider)
	c.LogLevel = strings.ToLower(c.LogLevel)
}

var validate = validator.New()

// Validate reports the first problem as a *ConfigError.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ConfigError{Field: fe.Field(), Reason: fmt.Sprintf("fails %q (got %q)", fe.Tag(), fe.Value())}
		}
		return err
	}
	if c.Provider != "mock" && c.APIKey == "" {
		return &ConfigError{Field: "APIKey", Reason: "is required; set API_KEY"}
	}
	if c.Provider == "deepseek" && c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Reason: "is required for provider deepseek"}
	}
	return nil
}
