// Package config loads server configuration from the environment. All
// variables are prefixed CASENSE_, e.g. CASENSE_LISTEN_ADDR.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	// Server settings
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`

	// Rate limit applied to /api, requests per minute per client IP.
	RateLimit int `envconfig:"RATE_LIMIT" default:"300"`

	// Directories
	DataDirectory string `envconfig:"DATA_DIR"`

	// DataFileName is the document holding all records, relative to
	// DataDirectory.
	DataFileName string `envconfig:"DATA_FILE" default:"data.json"`
}

// Load reads configuration from the environment and creates the data
// directory if needed.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("casense", &cfg); err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	if cfg.DataDirectory == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		cfg.DataDirectory = filepath.Join(wd, "data")
	}

	cfg.ensureDirectories()
	return &cfg, nil
}

// DataFile returns the full path of the record document.
func (c *Config) DataFile() string {
	return filepath.Join(c.DataDirectory, c.DataFileName)
}

// ensureDirectories creates required directories if they don't exist
func (c *Config) ensureDirectories() {
	if err := os.MkdirAll(c.DataDirectory, 0755); err != nil {
		log.Printf("Warning: could not create directory %s: %v", c.DataDirectory, err)
	}
}
