// =============================================================================
// Voyage Data Collector - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration.
//
// SOURCES (later wins):
//   1. Built-in defaults
//   2. YAML configuration file (config.yaml by default)
//   3. VOYAGE_* environment variables (a .env file is honored when present)
//
// A missing configuration file is not an error; the defaults are designed to
// work out of the box.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the global application configuration.
type Config struct {
	// OutputDir is the directory where exported JSON/CSV/XLSX files are
	// written. Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputDir is the directory scanned for saved voyage JSON records by
	// the export command. Default: "./records"
	InputDir string `yaml:"input_dir"`

	// ArchiveDir is the directory exported files are copied to for
	// long-term storage. Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// LogFile is the path of the session log. Logging goes to a file so
	// the interactive console stays clean. Default: "./logs/voyage.log"
	LogFile string `yaml:"log_file"`

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// KeySeparator joins nested keys in flattened exports. Default: "_"
	KeySeparator string `yaml:"key_separator"`

	// FilenamePattern names saved JSON records. Placeholders:
	//   {voyage}    - the voyage number ("unknown" when empty)
	//   {timestamp} - collection timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "voyage_{voyage}_{timestamp}.json"
	FilenamePattern string `yaml:"filename_pattern"`
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		OutputDir:       "./output",
		InputDir:        "./records",
		ArchiveDir:      "./archive",
		LogFile:         "./logs/voyage.log",
		LogLevel:        "info",
		KeySeparator:    "_",
		FilenamePattern: "voyage_{voyage}_{timestamp}.json",
	}
}

// Load reads the configuration file at path, applies defaults for any unset
// field and then applies environment overrides. A nonexistent file yields
// the default configuration.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		applyDefaults(cfg)
	}

	cfg.applyEnvOverrides()

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in any field the config file left empty.
func applyDefaults(cfg *Config) {
	def := defaults()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.InputDir == "" {
		cfg.InputDir = def.InputDir
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = def.ArchiveDir
	}
	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.KeySeparator == "" {
		cfg.KeySeparator = def.KeySeparator
	}
	if cfg.FilenamePattern == "" {
		cfg.FilenamePattern = def.FilenamePattern
	}
}

// applyEnvOverrides applies VOYAGE_* environment variables on top of the
// loaded configuration.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VOYAGE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("VOYAGE_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("VOYAGE_ARCHIVE_DIR"); v != "" {
		c.ArchiveDir = v
	}
	if v := os.Getenv("VOYAGE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("VOYAGE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// validate rejects configurations the rest of the application cannot use.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", cfg.LogLevel)
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
