// Package service wires the full document generation pipeline behind a single
// entry point shared by the CLI and the API server.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/priyansh/legal-doc-agent/internal/assemble"
	"github.com/priyansh/legal-doc-agent/internal/config"
	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/generation"
	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/observability"
	"github.com/priyansh/legal-doc-agent/internal/persistence"
	"github.com/priyansh/legal-doc-agent/internal/render"
	"github.com/priyansh/legal-doc-agent/internal/schemas"
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/translation"
	"github.com/priyansh/legal-doc-agent/internal/types"
	"github.com/priyansh/legal-doc-agent/internal/validation"
)

const contentSchemaFile = "content_document.schema.json"

// GenerationError wraps any failure of the document generation pipeline.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Request describes one document generation run.
type Request struct {
	DocType  string
	Language string
	Scenario string

	// Optional uploaded template. When set, the template is used both as the
	// render target and as the style reference.
	TemplateContent  []byte
	TemplateFilename string
}

// Result is the outcome of a completed run.
type Result struct {
	OutputPath string
	Metadata   *types.GenerationMetadata
}

// Service runs the document generation pipeline.
type Service struct {
	cfg        config.Config
	extractor  *generation.Extractor
	generator  *generation.Generator
	validator  *validation.Agent
	translator *translation.Agent
	resolver   *styles.Resolver
	records    *persistence.Store
	printer    *observability.Printer
}

// New creates a service backed by the given LLM client. The printer is
// optional; pass nil to disable verbose output.
func New(cfg config.Config, client llm.Client, printer *observability.Printer) *Service {
	return &Service{
		cfg:        cfg,
		extractor:  generation.NewExtractor(client, cfg.SchemasDir),
		generator:  generation.NewGenerator(client, cfg.SchemasDir),
		validator:  validation.NewAgent(client),
		translator: translation.NewAgent(translation.NewCache(translation.GeminiFactory(client))),
		resolver:   styles.NewResolver(styles.NewStore(cfg.StylesDir)),
		records:    persistence.NewStore(cfg.MetadataDir),
		printer:    printer,
	}
}

// Generate runs the complete pipeline: extract metadata, generate content,
// validate, translate, resolve styles, and render the final document. Content
// problems degrade with defaults; an unusable template or an unwritable
// output are fatal.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	category, err := validation.ValidateCategory(req.DocType)
	if err != nil {
		return nil, &GenerationError{Message: fmt.Sprintf("unsupported document type: %s", req.DocType), Cause: err}
	}
	langName, ok := types.SupportedLanguages[req.Language]
	if !ok {
		return nil, &GenerationError{Message: fmt.Sprintf("unsupported language: %s", req.Language)}
	}
	if strings.TrimSpace(req.Scenario) == "" {
		return nil, &GenerationError{Message: "scenario description cannot be empty"}
	}

	log.Printf("[SERVICE] Starting %s generation in %s", category, langName)

	// Step 1: metadata extraction, with defaults for anything missing.
	data := s.extractor.Extract(ctx, req.Scenario, category)
	required := s.extractor.RequiredFields(category)
	filled := generation.FillMissing(data, required)
	if len(filled) > 0 {
		log.Printf("[SERVICE] Filled missing fields with defaults: %s", strings.Join(filled, ", "))
	}
	if s.printer != nil {
		s.printer.PrintExtractedData(data, filled)
	}

	// Step 2: content generation.
	content, err := s.generator.Generate(ctx, category, req.Scenario, data)
	if err != nil {
		return nil, &GenerationError{Message: "content generation failed", Cause: err}
	}
	if err := s.checkContentShape(content); err != nil {
		return nil, err
	}

	// Step 3: validation and placeholder repair.
	content = s.validator.Validate(ctx, category, content, required)

	// Step 4: translation, degrading to English on failure.
	langCode := req.Language
	translationStatus := "Not needed (English)"
	if langCode != "en" {
		translated, err := s.translator.TranslateDocument(ctx, content, langCode)
		if err != nil {
			log.Printf("[SERVICE] Translation failed (%v), continuing with English content", err)
			translationStatus = "Failed, used English"
			langCode = "en"
		} else {
			content = translated
			translationStatus = fmt.Sprintf("Applied (%s)", langName)
		}
	}

	// Step 5: template and style resolution. An uploaded template doubles as
	// the style reference.
	templateUsed := len(req.TemplateContent) > 0
	var container *docx.Container
	var ref *docx.Container
	if templateUsed {
		container, err = docx.OpenBytes(req.TemplateContent)
		if err != nil {
			return nil, &GenerationError{Message: "uploaded template is not usable", Cause: &render.TemplateError{Path: req.TemplateFilename, Cause: err}}
		}
		ref = container
	} else {
		container, err = docx.NewBlank()
		if err != nil {
			return nil, &GenerationError{Message: "failed to create blank document", Cause: err}
		}
	}

	profile := s.resolver.Resolve(ref, category)
	if s.printer != nil {
		s.printer.PrintStyleProfile(profile)
	}

	// Step 6: assembly and rendering.
	instructions := assemble.Assemble(content, profile, category)
	if s.printer != nil {
		s.printer.PrintInstructions(instructions)
	}

	finalFilename := finalFilename(data, category, langCode)
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, &GenerationError{Message: "failed to create output directory", Cause: err}
	}
	outputPath := filepath.Join(s.cfg.OutputDir, finalFilename)
	if err := render.Render(instructions, container, outputPath); err != nil {
		return nil, &GenerationError{Message: "failed to render document", Cause: err}
	}

	metadata := &types.GenerationMetadata{
		Category:            category,
		Language:            langName,
		LanguageCode:        langCode,
		ExtractedFields:     data,
		SectionsGenerated:   len(content.Sections),
		ProcessingTimeMS:    time.Since(start).Milliseconds(),
		TemplateUsed:        templateUsed,
		TemplateFilename:    req.TemplateFilename,
		TranslationStatus:   translationStatus,
		Scenario:            truncateScenario(req.Scenario),
		GenerationTimestamp: time.Now().Format(time.RFC3339),
		MissingFieldsFilled: filled,
		FinalFilename:       finalFilename,
	}

	if _, err := s.records.SaveMetadata(fmt.Sprintf("%s generation", category), metadata, ""); err != nil {
		log.Printf("[SERVICE] Could not save run metadata: %v", err)
	}
	if s.printer != nil {
		s.printer.PrintRunSummary(metadata)
	}

	log.Printf("[SERVICE] Completed %s generation in %dms: %s", category, metadata.ProcessingTimeMS, outputPath)
	return &Result{OutputPath: outputPath, Metadata: metadata}, nil
}

// checkContentShape validates the generated content against the content
// document schema. A missing schema file is logged and skipped; a shape
// violation is fatal because the renderer cannot consume malformed content.
func (s *Service) checkContentShape(content *types.ContentDocument) error {
	schemaData, err := os.ReadFile(filepath.Join(s.cfg.SchemasDir, contentSchemaFile))
	if err != nil {
		log.Printf("[SERVICE] Content schema unavailable (%v), skipping shape check", err)
		return nil
	}

	contentJSON, err := json.Marshal(content)
	if err != nil {
		return &GenerationError{Message: "generated content cannot be encoded", Cause: err}
	}
	if err := schemas.ValidateJSONString(string(schemaData), string(contentJSON)); err != nil {
		return &GenerationError{Message: "generated content failed schema validation", Cause: err}
	}
	return nil
}

// RequiredFields returns the required metadata fields for a document type.
func (s *Service) RequiredFields(docType string) ([]string, error) {
	category, err := validation.ValidateCategory(docType)
	if err != nil {
		return nil, &GenerationError{Message: fmt.Sprintf("unsupported document type: %s", docType), Cause: err}
	}
	return s.extractor.RequiredFields(category), nil
}

// DocumentTypes returns the supported document categories.
func DocumentTypes() []types.DocumentCategory {
	return types.Categories()
}

// Languages returns the supported language codes mapped to display names.
func Languages() map[string]string {
	return types.SupportedLanguages
}

func finalFilename(data types.ExtractedData, category types.DocumentCategory, langCode string) string {
	name := data["Name"]
	if name == "" {
		name = "Document"
	}
	safe := strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(name)
	return fmt.Sprintf("%s_%s_%s_Final.docx", safe, category, strings.ToUpper(langCode))
}

func truncateScenario(scenario string) string {
	if len(scenario) > 100 {
		return scenario[:100] + "..."
	}
	return scenario
}
