package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/config"
	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/render"
)

// fakeClient routes prompts to canned responses by prompt content.
type fakeClient struct {
	extraction string
	content    string
	translated string
	jsonErr    bool
	contentErr bool
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	if f.jsonErr {
		return "", errors.New("model unavailable")
	}
	if strings.Contains(prompt, "extracts key details") {
		return f.extraction, nil
	}
	return f.content, nil
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if f.contentErr {
		return "", errors.New("model unavailable")
	}
	return f.translated, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                 { return nil }

const ndaExtraction = `{"Name": "Alice Johnson", "Company": "TechNova", "Date": "2026-01-15", "Term": "2 years"}`

const ndaContent = `{
	"title": "Non-Disclosure Agreement",
	"sections": {
		"introduction": {"type": "Paragraph", "content": "This Non-Disclosure Agreement is made between Alice Johnson and TechNova."},
		"confidentiality": {"type": "Paragraph", "content": "Confidential Information means all non-public information disclosed by either party."},
		"obligations": {"type": "Paragraph", "content": "The obligations of the Receiving Party survive termination."},
		"term": {"type": "Paragraph", "content": "The term of this Agreement is 2 years."},
		"signatures_heading": {"type": "Heading 2", "content": "Signatures"},
		"signatures": {"type": "Signature", "content": "Disclosing Party: Alice Johnson\n\n_____________________________"}
	}
}`

func writeSchemas(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	structure := `{
		"NDA": [
			{"type": "Paragraph", "text": "This NDA concerns confidential information, obligations, and term between [Name] and [Company]."},
			{"type": "Signature", "text": ""}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc_structure.json"), []byte(structure), 0o644))

	fields := `{"NDA": {"required_fields": ["Name", "Company", "Date", "Term"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "required_fields.json"), []byte(fields), 0o644))

	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["sections"],
		"properties": {
			"title": {"type": "string"},
			"sections": {
				"type": "object",
				"minProperties": 1,
				"additionalProperties": {
					"type": "object",
					"required": ["type", "content"],
					"properties": {
						"type": {"type": "string"},
						"content": {"type": "string"}
					}
				}
			}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content_document.schema.json"), []byte(schema), 0o644))
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Config{
		SchemasDir:  filepath.Join(root, "schemas"),
		StylesDir:   filepath.Join(root, "styles"),
		OutputDir:   filepath.Join(root, "output"),
		MetadataDir: filepath.Join(root, "metadata"),
	}
	writeSchemas(t, cfg.SchemasDir)
	return cfg
}

func bodyText(t *testing.T, path string) string {
	t.Helper()
	container, err := docx.Open(path)
	require.NoError(t, err)
	var sb strings.Builder
	for _, f := range container.ParagraphFormats() {
		sb.WriteString(f.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestGenerateEnglishNDA(t *testing.T) {
	cfg := testConfig(t)
	svc := New(cfg, &fakeClient{extraction: ndaExtraction, content: ndaContent}, nil)

	result, err := svc.Generate(context.Background(), Request{
		DocType:  "NDA",
		Language: "en",
		Scenario: "Draft an NDA between Alice Johnson and TechNova for 2 years.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice_Johnson_NDA_EN_Final.docx", filepath.Base(result.OutputPath))
	assert.Contains(t, bodyText(t, result.OutputPath), "Non-Disclosure Agreement")

	metadata := result.Metadata
	assert.Equal(t, "English", metadata.Language)
	assert.Equal(t, "en", metadata.LanguageCode)
	assert.Equal(t, 6, metadata.SectionsGenerated)
	assert.Equal(t, "Not needed (English)", metadata.TranslationStatus)
	assert.False(t, metadata.TemplateUsed)
	assert.Empty(t, metadata.MissingFieldsFilled)
	assert.Equal(t, "Alice Johnson", metadata.ExtractedFields["Name"])

	// A metadata record was persisted alongside the document.
	entries, err := os.ReadDir(cfg.MetadataDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	svc := New(testConfig(t), &fakeClient{}, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"unsupported type", Request{DocType: "Lease", Language: "en", Scenario: "x"}},
		{"unsupported language", Request{DocType: "NDA", Language: "xx", Scenario: "x"}},
		{"empty scenario", Request{DocType: "NDA", Language: "en", Scenario: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			require.Error(t, err)
			var genErr *GenerationError
			assert.True(t, errors.As(err, &genErr))
		})
	}
}

func TestGenerateFallsBackWhenModelUnavailable(t *testing.T) {
	cfg := testConfig(t)
	svc := New(cfg, &fakeClient{jsonErr: true}, nil)

	result, err := svc.Generate(context.Background(), Request{
		DocType:  "NDA",
		Language: "en",
		Scenario: "Draft an NDA.",
	})
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(result.OutputPath), "NDA_EN_Final.docx")
	assert.Contains(t, result.Metadata.MissingFieldsFilled, "Name")
	assert.Equal(t, "2 years", result.Metadata.ExtractedFields["Term"])
	assert.Contains(t, bodyText(t, result.OutputPath), "confidential information")
}

func TestGenerateTranslationApplied(t *testing.T) {
	cfg := testConfig(t)
	svc := New(cfg, &fakeClient{
		extraction: ndaExtraction,
		content:    ndaContent,
		translated: "Contenido traducido",
	}, nil)

	result, err := svc.Generate(context.Background(), Request{
		DocType:  "NDA",
		Language: "es",
		Scenario: "Draft an NDA for a Spanish-speaking client.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Applied (Spanish)", result.Metadata.TranslationStatus)
	assert.Equal(t, "es", result.Metadata.LanguageCode)
	assert.Equal(t, "Alice_Johnson_NDA_ES_Final.docx", filepath.Base(result.OutputPath))
	assert.Contains(t, bodyText(t, result.OutputPath), "Contenido traducido")
}

func TestGenerateWithUploadedTemplate(t *testing.T) {
	cfg := testConfig(t)
	svc := New(cfg, &fakeClient{extraction: ndaExtraction, content: ndaContent}, nil)

	template, err := docx.NewBlank()
	require.NoError(t, err)
	template.AppendParagraph(&docx.Paragraph{
		Properties: &docx.ParagraphProperties{Style: &docx.StyleRef{Val: "Heading1"}},
		Runs: []docx.Run{{
			Properties: &docx.RunProperties{
				Font: &docx.Fonts{ASCII: "Garamond", HAnsi: "Garamond"},
				Size: &docx.HalfPointSize{Val: 32},
			},
			Text: &docx.Text{Content: "Heading"},
		}},
	})
	templateBytes, err := template.Bytes()
	require.NoError(t, err)

	result, err := svc.Generate(context.Background(), Request{
		DocType:          "NDA",
		Language:         "en",
		Scenario:         "Draft an NDA using my letterhead.",
		TemplateContent:  templateBytes,
		TemplateFilename: "letterhead.docx",
	})
	require.NoError(t, err)

	assert.True(t, result.Metadata.TemplateUsed)
	assert.Equal(t, "letterhead.docx", result.Metadata.TemplateFilename)

	// The title inherits the template's Heading 1 font.
	container, err := docx.Open(result.OutputPath)
	require.NoError(t, err)
	formats := container.ParagraphFormats()
	require.NotEmpty(t, formats)
	assert.Equal(t, "Garamond", formats[0].Font)
	assert.Equal(t, 16.0, formats[0].Size)
}

func TestGenerateRejectsUnusableTemplate(t *testing.T) {
	svc := New(testConfig(t), &fakeClient{extraction: ndaExtraction, content: ndaContent}, nil)

	_, err := svc.Generate(context.Background(), Request{
		DocType:          "NDA",
		Language:         "en",
		Scenario:         "Draft an NDA.",
		TemplateContent:  []byte("not a document"),
		TemplateFilename: "broken.docx",
	})
	require.Error(t, err)

	var tmplErr *render.TemplateError
	assert.True(t, errors.As(err, &tmplErr))
}

func TestRequiredFields(t *testing.T) {
	svc := New(testConfig(t), &fakeClient{}, nil)

	fields, err := svc.RequiredFields("NDA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Company", "Date", "Term"}, fields)

	_, err = svc.RequiredFields("Lease")
	require.Error(t, err)
}

func TestDocumentTypesAndLanguages(t *testing.T) {
	assert.Len(t, DocumentTypes(), 5)
	assert.Equal(t, "English", Languages()["en"])
}
