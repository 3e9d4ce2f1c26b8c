// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds the server settings.
type Config struct {
	Addr          string `env:"CAMPUS_ADDR" envDefault:":8088"`
	EdgesFile     string `env:"CAMPUS_EDGES_FILE" envDefault:"data/campus_edges.csv"`
	BuildingsFile string `env:"CAMPUS_BUILDINGS_FILE"`
	Store         string `env:"CAMPUS_STORE" envDefault:"memory"`
	SQLitePath    string `env:"CAMPUS_SQLITE_PATH" envDefault:"campus.db"`
	CORSOrigin    string `env:"CAMPUS_CORS_ORIGIN" envDefault:"*"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used together.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address is required")
	}
	if strings.TrimSpace(c.EdgesFile) == "" {
		return fmt.Errorf("edges file is required")
	}
	switch c.Store {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("sqlite store needs CAMPUS_SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unknown store %q (want %q or %q)", c.Store, StoreMemory, StoreSQLite)
	}
	return nil
}
