package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/validation"
)

var extractStylesCmd = &cobra.Command{
	Use:   "extract-styles",
	Short: "Extract a style profile from a .docx template",
	Long:  "Scans a template's paragraphs and saves the per-category style file used when generating without a reference template.",
	RunE:  runExtractStyles,
}

var (
	extractDocType  string
	extractTemplate string
)

func init() {
	extractStylesCmd.Flags().StringVarP(&extractDocType, "type", "t", "", "Document type the styles belong to")
	extractStylesCmd.Flags().StringVar(&extractTemplate, "template", "", "Path to the .docx template")
	_ = extractStylesCmd.MarkFlagRequired("type")
	_ = extractStylesCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(extractStylesCmd)
}

func runExtractStyles(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	category, err := validation.ValidateCategory(extractDocType)
	if err != nil {
		return err
	}

	store := styles.NewStore(cfg.StylesDir)
	profile, err := store.Extract(extractTemplate, category)
	if err != nil {
		return fmt.Errorf("failed to extract styles: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Extracted %d styles to %s\n", len(profile), store.Path(category))
	for name, spec := range profile {
		fmt.Fprintf(os.Stdout, "  %-12s %s %g pt, %s\n", name, spec.Font, spec.Size, spec.Align)
	}
	return nil
}
