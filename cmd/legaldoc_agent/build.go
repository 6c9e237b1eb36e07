package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/assemble"
	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/render"
	"github.com/priyansh/legal-doc-agent/internal/schemas"
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
	"github.com/priyansh/legal-doc-agent/internal/validation"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render a document from existing content JSON",
	Long:  "Builds a styled Word document from an already generated content JSON file, without any model calls. Useful for re-rendering with a different template or after manual edits.",
	RunE:  runBuild,
}

var (
	buildDocType  string
	buildContent  string
	buildTemplate string
	buildOutput   string
)

func init() {
	buildCmd.Flags().StringVarP(&buildDocType, "type", "t", "", "Document type (NDA, Offer_Letter, Contract, MOU, IP_Agreement)")
	buildCmd.Flags().StringVarP(&buildContent, "content", "c", "", "Path to content JSON file")
	buildCmd.Flags().StringVar(&buildTemplate, "template", "", "Path to a .docx template used for layout and styling")
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Output .docx path (default: <content>.docx)")
	_ = buildCmd.MarkFlagRequired("type")
	_ = buildCmd.MarkFlagRequired("content")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	category, err := validation.ValidateCategory(buildDocType)
	if err != nil {
		return err
	}

	// Validate the content file against the shipped schema before parsing.
	schemaPath := schemas.ResolveSchemaPath(filepath.Join(cfg.SchemasDir, "content_document.schema.json"))
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, buildContent); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("content file does not validate against schema: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Warning: Could not validate content against schema: %v\n", err)
		}
	}

	data, err := os.ReadFile(buildContent)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}
	var content types.ContentDocument
	if err := json.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("failed to parse content file: %w", err)
	}

	var container *docx.Container
	var ref *docx.Container
	if buildTemplate != "" {
		container, err = docx.Open(buildTemplate)
		if err != nil {
			return fmt.Errorf("failed to open template: %w", err)
		}
		ref = container
	} else {
		container, err = docx.NewBlank()
		if err != nil {
			return err
		}
	}

	resolver := styles.NewResolver(styles.NewStore(cfg.StylesDir))
	profile := resolver.Resolve(ref, category)
	instructions := assemble.Assemble(&content, profile, category)

	output := buildOutput
	if output == "" {
		base := buildContent[:len(buildContent)-len(filepath.Ext(buildContent))]
		output = base + ".docx"
	}
	if err := render.Render(instructions, container, output); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Document built: %s\n", output)
	return nil
}
