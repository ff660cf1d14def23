// Package config loads glforge configuration from .glforge/config.yaml
// with environment variable overrides. A missing file yields the defaults;
// nothing in the server requires configuration to run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all glforge configuration.
type Config struct {
	// Server identity reported to MCP clients.
	Server ServerConfig `yaml:"server"`

	// Docs configures the documentation fetch tool.
	Docs DocsConfig `yaml:"docs"`

	// Logging controls the categorized file logger.
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig identifies the MCP server.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// DocsConfig configures documentation retrieval.
type DocsConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
	JSONFormat bool            `yaml:"json_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "glforge",
			Version: "0.3.0",
		},
		Docs: DocsConfig{
			BaseURL: "https://docs.genlayer.com",
			Timeout: "15s",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load reads .glforge/config.yaml under the workspace and applies
// environment overrides. A missing file is not an error.
func Load(workspace string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(workspace, ".glforge", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("GLFORGE_DOCS_URL"); url != "" {
		c.Docs.BaseURL = url
	}
	if debug := os.Getenv("GLFORGE_DEBUG"); debug != "" {
		switch strings.ToLower(debug) {
		case "1", "true", "yes":
			c.Logging.DebugMode = true
		case "0", "false", "no":
			c.Logging.DebugMode = false
		}
	}
	if level := os.Getenv("GLFORGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
