// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Directories
	TemplatesDir     string `json:"templates_dir,omitempty"`      // User-registered templates
	BaseTemplatesDir string `json:"base_templates_dir,omitempty"` // Built-in base templates
	WorkingDir       string `json:"working_dir,omitempty"`        // Template working copies
	StylesDir        string `json:"styles_dir,omitempty"`         // Per-category style files
	SchemasDir       string `json:"schemas_dir,omitempty"`        // Document structure schemas
	OutputDir        string `json:"output_dir,omitempty"`         // Final documents
	MetadataDir      string `json:"metadata_dir,omitempty"`       // Per-run metadata records

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (server mode)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
}

// DefaultConfig returns the configuration with every directory under a local
// data root.
func DefaultConfig() Config {
	return Config{
		TemplatesDir:     "data/templates",
		BaseTemplatesDir: "data/templates/base",
		WorkingDir:       "data/working",
		StylesDir:        "data/styles",
		SchemasDir:       "schemas",
		OutputDir:        "data/output",
		MetadataDir:      "data/output/metadata",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate directory paths exist (if specified)
	if c.SchemasDir != "" {
		if _, err := os.Stat(c.SchemasDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: schemas directory not found: %s", c.SchemasDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.BaseTemplatesDir == "" {
		result.BaseTemplatesDir = defaults.BaseTemplatesDir
	}
	if result.WorkingDir == "" {
		result.WorkingDir = defaults.WorkingDir
	}
	if result.StylesDir == "" {
		result.StylesDir = defaults.StylesDir
	}
	if result.SchemasDir == "" {
		result.SchemasDir = defaults.SchemasDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.MetadataDir == "" {
		result.MetadataDir = defaults.MetadataDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EnsureDirectories creates every configured directory that does not exist.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.TemplatesDir,
		c.BaseTemplatesDir,
		c.WorkingDir,
		c.StylesDir,
		c.OutputDir,
		c.MetadataDir,
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
