// Package config loads the storefront CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/creastat/storefront/api"
	"github.com/creastat/storefront/session"
)

// Config is the storefront CLI configuration.
type Config struct {
	// BaseURL is the backend address.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each backend request.
	Timeout time.Duration `yaml:"timeout"`

	// ReturnURL is where the hosted payment page redirects after an online
	// checkout completes.
	ReturnURL string `yaml:"return_url"`

	// Session selects how the bearer credential is persisted.
	Session SessionConfig `yaml:"session"`
}

// SessionConfig selects and configures the session store driver.
type SessionConfig struct {
	// Driver is one of "memory", "file", "redis".
	Driver string `yaml:"driver"`

	// File is the session file path for the file driver. Empty means the
	// well-known default under the user's home directory.
	File string `yaml:"file"`

	// Redis configures the redis driver.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds redis driver settings.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Default returns a working configuration: production backend, file-backed
// session under the user's home directory.
func Default() Config {
	return Config{
		BaseURL:   api.DefaultBaseURL,
		Timeout:   15 * time.Second,
		ReturnURL: "http://localhost:5173",
		Session: SessionConfig{
			Driver: string(session.StoreTypeFile),
		},
	}
}

// Load reads the YAML config at path, layered over the defaults. A missing
// file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Session.Driver == "" {
		cfg.Session.Driver = string(session.StoreTypeFile)
	}
	return cfg, nil
}
