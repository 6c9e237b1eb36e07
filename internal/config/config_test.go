package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"templates_dir": "/srv/legaldoc/templates",
		"styles_dir": "/srv/legaldoc/styles",
		"output_dir": "/srv/legaldoc/output",
		"api_key": "test-key",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/srv/legaldoc/templates", cfg.TemplatesDir)
	assert.Equal(t, "/srv/legaldoc/styles", cfg.StylesDir)
	assert.Equal(t, "/srv/legaldoc/output", cfg.OutputDir)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MissingSchemasDir(t *testing.T) {
	cfg := &Config{
		SchemasDir: filepath.Join(t.TempDir(), "does-not-exist"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schemas directory not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		SchemasDir: t.TempDir(),
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := DefaultConfig()
	defaults.APIKey = "default-key"

	partial := Config{
		OutputDir: "/custom/output",
		APIKey:    "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "/custom/output", merged.OutputDir)
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, defaults.TemplatesDir, merged.TemplatesDir)
	assert.Equal(t, defaults.StylesDir, merged.StylesDir)
	assert.Equal(t, defaults.MetadataDir, merged.MetadataDir)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		OutputDir: "/custom/output",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "/custom/output", merged.OutputDir)
	assert.Empty(t, merged.TemplatesDir)
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Config{
		TemplatesDir: filepath.Join(root, "templates"),
		StylesDir:    filepath.Join(root, "styles"),
		OutputDir:    filepath.Join(root, "output"),
		MetadataDir:  filepath.Join(root, "output", "metadata"),
	}

	require.NoError(t, cfg.EnsureDirectories())
	for _, dir := range []string{cfg.TemplatesDir, cfg.StylesDir, cfg.OutputDir, cfg.MetadataDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
