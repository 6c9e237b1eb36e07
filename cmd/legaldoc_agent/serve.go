package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/server"
	"github.com/priyansh/legal-doc-agent/internal/service"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for document generation and downloads. With DATABASE_URL set, run records are stored in PostgreSQL.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or api_key in the config file)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	svc := service.New(cfg, client, nil)

	srv, err := server.New(server.Config{
		Port:        servePort,
		DatabaseURL: cfg.DatabaseURL,
		OutputDir:   cfg.OutputDir,
	}, svc)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Serving on port %d\n", servePort)
	return srv.Start()
}
