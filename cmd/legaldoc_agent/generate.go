package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/observability"
	"github.com/priyansh/legal-doc-agent/internal/service"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a complete legal document from a scenario",
	Long:  "Runs the full pipeline: extracts metadata from the scenario, generates and validates content, translates if needed, and renders a styled Word document.",
	RunE:  runGenerate,
}

var (
	generateDocType      string
	generateLanguage     string
	generateScenario     string
	generateScenarioFile string
	generateTemplate     string
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateDocType, "type", "t", "", "Document type (NDA, Offer_Letter, Contract, MOU, IP_Agreement)")
	generateCmd.Flags().StringVarP(&generateLanguage, "lang", "l", "en", "Target language code (en, hi, es, ...)")
	generateCmd.Flags().StringVarP(&generateScenario, "scenario", "s", "", "Natural language scenario description")
	generateCmd.Flags().StringVar(&generateScenarioFile, "scenario-file", "", "Read the scenario from a text file")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "Path to a .docx template used for layout and styling")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed pipeline progress")
	_ = generateCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
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

	scenario := generateScenario
	if generateScenarioFile != "" {
		data, err := os.ReadFile(generateScenarioFile)
		if err != nil {
			return fmt.Errorf("failed to read scenario file: %w", err)
		}
		scenario = string(data)
	}
	if scenario == "" {
		return fmt.Errorf("a scenario is required (use --scenario or --scenario-file)")
	}

	req := service.Request{
		DocType:  generateDocType,
		Language: generateLanguage,
		Scenario: scenario,
	}
	if generateTemplate != "" {
		content, err := os.ReadFile(generateTemplate)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		req.TemplateContent = content
		req.TemplateFilename = filepath.Base(generateTemplate)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	var printer *observability.Printer
	if generateVerbose || cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
	}

	svc := service.New(cfg, client, printer)
	result, err := svc.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Document generated: %s\n", result.OutputPath)
	fmt.Fprintf(os.Stdout, "Translation: %s\n", result.Metadata.TranslationStatus)
	fmt.Fprintf(os.Stdout, "Processing time: %dms\n", result.Metadata.ProcessingTimeMS)
	return nil
}
