// Package generation produces structured document content and extracts
// scenario metadata using an LLM, with deterministic fallbacks when model
// output cannot be parsed.
package generation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/priyansh/legal-doc-agent/internal/types"
)

const structureSchemaFile = "doc_structure.json"

// SectionTemplate is one entry of a category's structure schema: the section
// type and its placeholder text.
type SectionTemplate struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// LoadStructure reads the structure schema for a category from the schemas
// directory. A missing schema file or category entry is an error: structure
// schemas ship with the application and are a hard prerequisite.
func LoadStructure(schemasDir string, category types.DocumentCategory) ([]SectionTemplate, error) {
	path := filepath.Join(schemasDir, structureSchemaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure schema %s: %w", path, err)
	}

	var schema map[types.DocumentCategory][]SectionTemplate
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse structure schema: %w", err)
	}

	structure, ok := schema[category]
	if !ok {
		return nil, fmt.Errorf("no structure schema defined for document type %q", category)
	}
	return structure, nil
}
