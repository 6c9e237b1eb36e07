package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

const fieldsSchemaFile = "required_fields.json"

// Fields assumed when a category has no entry in the fields schema.
var baseRequiredFields = []string{"Name", "Company", "Date"}

// Extractor pulls structured metadata fields out of a free-text scenario.
type Extractor struct {
	client     llm.Client
	schemasDir string
}

// NewExtractor creates an extractor backed by the given LLM client.
func NewExtractor(client llm.Client, schemasDir string) *Extractor {
	return &Extractor{client: client, schemasDir: schemasDir}
}

// RequiredFields returns the required metadata fields for a category. Schema
// problems degrade to the base field set rather than failing.
func (e *Extractor) RequiredFields(category types.DocumentCategory) []string {
	path := filepath.Join(e.schemasDir, fieldsSchemaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[EXTRACT] Fields schema unavailable (%v), using base fields", err)
		return baseRequiredFields
	}

	var schema map[types.DocumentCategory]struct {
		RequiredFields []string `json:"required_fields"`
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		log.Printf("[EXTRACT] Fields schema unparseable (%v), using base fields", err)
		return baseRequiredFields
	}

	entry, ok := schema[category]
	if !ok || len(entry.RequiredFields) == 0 {
		return baseRequiredFields
	}
	return entry.RequiredFields
}

// Extract asks the model for the category's required fields. Fields absent
// from the scenario come back blank; a response that cannot be parsed yields
// an all-blank field map rather than an error.
func (e *Extractor) Extract(ctx context.Context, scenario string, category types.DocumentCategory) types.ExtractedData {
	required := e.RequiredFields(category)
	prompt := extractionPrompt(scenario, required)

	data := types.ExtractedData{}
	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[EXTRACT] Metadata extraction failed (%v), returning blank fields", err)
	} else if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &data); err != nil {
		log.Printf("[EXTRACT] Could not parse extraction output (%v), returning blank fields", err)
		data = types.ExtractedData{}
	}

	for _, field := range required {
		if _, ok := data[field]; !ok {
			data[field] = ""
		}
	}
	return data
}

// FillMissing replaces blank required fields with sensible defaults and
// returns the list of fields that were filled. Date, Term, and Jurisdiction
// get concrete defaults; anything else gets a bracketed request for input.
func FillMissing(data types.ExtractedData, required []string) []string {
	var filled []string
	for _, field := range required {
		if data[field] != "" {
			continue
		}
		filled = append(filled, field)
		switch field {
		case "Date":
			data[field] = time.Now().Format("2006-01-02")
		case "Term":
			data[field] = "2 years"
		case "Jurisdiction":
			data[field] = "United States"
		default:
			data[field] = fmt.Sprintf("[Please provide %s]", field)
		}
	}
	return filled
}

func extractionPrompt(scenario string, required []string) string {
	var fieldList, jsonFields []string
	for _, field := range required {
		fieldList = append(fieldList, "- "+field)
		jsonFields = append(jsonFields, fmt.Sprintf("  %q: \"string\"", field))
	}

	return fmt.Sprintf(`You are an intelligent assistant that extracts key details from a document drafting scenario.

Extract the following fields if present:
%s

If any of them are missing, leave them blank ("").

Respond ONLY with valid JSON in this format:
{
%s
}

Scenario:
%s`, strings.Join(fieldList, "\n"), strings.Join(jsonFields, ",\n"), scenario)
}
