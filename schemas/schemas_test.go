package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/schemas"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"content_document.schema.json",
		"doc_structure.json",
		"required_fields.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestDocStructure_CoversAllCategories(t *testing.T) {
	data, err := os.ReadFile("doc_structure.json")
	require.NoError(t, err)

	var structure map[types.DocumentCategory][]struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(data, &structure))

	for _, category := range types.Categories() {
		sections, ok := structure[category]
		require.True(t, ok, "doc_structure.json should define %s", category)
		require.NotEmpty(t, sections)

		// Every category ends with a signature section.
		last := sections[len(sections)-1]
		assert.Equal(t, types.SectionSignature, last.Type, "%s should end with a signature section", category)
		assert.Contains(t, last.Text, "Disclosing Party:")
		if category.RequiresSingleSignature() {
			assert.NotContains(t, last.Text, "Receiving Party:")
		} else {
			assert.Contains(t, last.Text, "Receiving Party:")
		}
	}
}

func TestRequiredFields_CoversAllCategories(t *testing.T) {
	data, err := os.ReadFile("required_fields.json")
	require.NoError(t, err)

	var fields map[types.DocumentCategory]struct {
		RequiredFields []string `json:"required_fields"`
	}
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, category := range types.Categories() {
		entry, ok := fields[category]
		require.True(t, ok, "required_fields.json should define %s", category)
		assert.Contains(t, entry.RequiredFields, "Name")
		assert.Contains(t, entry.RequiredFields, "Company")
		assert.Contains(t, entry.RequiredFields, "Date")
	}
}

func TestContentDocumentSchema_AcceptsGeneratedShape(t *testing.T) {
	schemaData, err := os.ReadFile("content_document.schema.json")
	require.NoError(t, err)

	valid := `{
		"title": "Non-Disclosure Agreement",
		"sections": {
			"introduction": {"type": "Paragraph", "content": "This Agreement is made between the parties."},
			"signatures": {"type": "Signature", "content": "Disclosing Party: Alice"}
		}
	}`
	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), valid))

	missingContent := `{
		"title": "Contract",
		"sections": {
			"introduction": {"type": "Paragraph"}
		}
	}`
	err = schemas.ValidateJSONString(string(schemaData), missingContent)
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "expected ValidationError, got %T", err)

	emptySections := `{"title": "Contract", "sections": {}}`
	assert.Error(t, schemas.ValidateJSONString(string(schemaData), emptySections))
}
