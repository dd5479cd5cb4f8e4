/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/savortool/savor/pkg/errors"
)

// Config holds all runtime configuration. It is constructed once at
// startup and passed explicitly to each component.
type Config struct {
	Mealie   MealieConfig `mapstructure:"mealie"`
	Ollama   OllamaConfig `mapstructure:"ollama"`
	LogLevel string       `mapstructure:"log_level"`
}

// MealieConfig configures the recipe server client.
type MealieConfig struct {
	URL      string `mapstructure:"url"`
	APIToken string `mapstructure:"api_token"`
	PageSize int    `mapstructure:"page_size"`
}

// OllamaConfig configures the AI suggestion service client.
type OllamaConfig struct {
	URL     string        `mapstructure:"url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from the environment, applying defaults and
// validating required values. A .env file in the working directory is
// loaded first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "failed to load .env file", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindings := map[string]string{
		"mealie.url":       "MEALIE_URL",
		"mealie.api_token": "MEALIE_API_TOKEN",
		"mealie.page_size": "MEALIE_PAGE_SIZE",
		"ollama.url":       "OLLAMA_URL",
		"ollama.model":     "OLLAMA_MODEL",
		"ollama.timeout":   "OLLAMA_TIMEOUT",
		"log_level":        "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("failed to bind %s", env), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mealie.url", "https://demo.mealie.io")
	v.SetDefault("mealie.page_size", 100)
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.model", "gemma3:12b")
	v.SetDefault("ollama.timeout", "30s")
	v.SetDefault("log_level", "info")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Mealie.URL) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "mealie url is required (MEALIE_URL)")
	}
	if _, err := url.ParseRequestURI(c.Mealie.URL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid mealie url %q", c.Mealie.URL), err)
	}
	if c.Mealie.PageSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "mealie page size must be positive")
	}
	if strings.TrimSpace(c.Ollama.URL) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "ollama url is required (OLLAMA_URL)")
	}
	if _, err := url.ParseRequestURI(c.Ollama.URL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid ollama url %q", c.Ollama.URL), err)
	}
	if strings.TrimSpace(c.Ollama.Model) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "ollama model is required (OLLAMA_MODEL)")
	}
	if c.Ollama.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "ollama timeout must be positive")
	}
	return nil
}

// MaskToken returns the API token masked for logging, keeping only the
// first and last four characters.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
