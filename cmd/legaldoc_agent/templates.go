package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh/legal-doc-agent/internal/config"
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/templates"
	"github.com/priyansh/legal-doc-agent/internal/validation"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage document templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE:  runTemplatesList,
}

var templatesRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a template for a document type",
	Long:  "Copies a .docx file into the user template directory under the category's name and extracts its style profile.",
	RunE:  runTemplatesRegister,
}

var (
	registerDocType  string
	registerTemplate string
)

func init() {
	templatesRegisterCmd.Flags().StringVarP(&registerDocType, "type", "t", "", "Document type to register the template for")
	templatesRegisterCmd.Flags().StringVar(&registerTemplate, "template", "", "Path to the .docx template")
	_ = templatesRegisterCmd.MarkFlagRequired("type")
	_ = templatesRegisterCmd.MarkFlagRequired("template")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesRegisterCmd)
	rootCmd.AddCommand(templatesCmd)
}

func newTemplateManager(cfg config.Config) *templates.Manager {
	return templates.NewManager(cfg.TemplatesDir, cfg.BaseTemplatesDir, cfg.WorkingDir, styles.NewStore(cfg.StylesDir))
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	names, err := newTemplateManager(cfg).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "No templates registered.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}

func runTemplatesRegister(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	category, err := validation.ValidateCategory(registerDocType)
	if err != nil {
		return err
	}

	dest, err := newTemplateManager(cfg).Register(registerTemplate, category)
	if err != nil {
		return fmt.Errorf("failed to register template: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Template registered: %s\n", dest)
	return nil
}
