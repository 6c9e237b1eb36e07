package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/service"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate multiple documents from a scenarios file",
	Long:  "Reads a JSON array of generation requests and runs them concurrently. Each entry has doc_type, language, and scenario fields.",
	RunE:  runBatch,
}

var (
	batchFile        string
	batchConcurrency int
)

// batchEntry is one generation request in the scenarios file.
type batchEntry struct {
	DocType  string `json:"doc_type"`
	Language string `json:"language"`
	Scenario string `json:"scenario"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "scenarios", "f", "", "Path to JSON file with an array of generation requests")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 3, "Maximum concurrent generations")
	_ = batchCmd.MarkFlagRequired("scenarios")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
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

	data, err := os.ReadFile(batchFile)
	if err != nil {
		return fmt.Errorf("failed to read scenarios file: %w", err)
	}
	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse scenarios file: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("scenarios file is empty")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	svc := service.New(cfg, client, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	results := make([]string, len(entries))
	for i, entry := range entries {
		g.Go(func() error {
			language := entry.Language
			if language == "" {
				language = "en"
			}
			result, err := svc.Generate(ctx, service.Request{
				DocType:  entry.DocType,
				Language: language,
				Scenario: entry.Scenario,
			})
			if err != nil {
				return fmt.Errorf("entry %d (%s): %w", i+1, entry.DocType, err)
			}
			results[i] = result.OutputPath
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range results {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, path)
	}
	return nil
}
