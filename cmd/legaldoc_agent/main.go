// Package main provides the entry point for the legal document generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "legaldoc_agent",
	Short: "AI Legal Document Generator",
	Long:  "Generates styled legal documents (NDA, contracts, offer letters, MOUs, IP agreements) from natural language scenarios, with template-driven styling and multi-language output.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig loads the config file (when given) and fills the rest from
// defaults and the environment.
func loadAppConfig() (config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(config.DefaultConfig())
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return cfg, nil
}
