package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/assemble"
	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Generator produces full structured document content for a scenario.
type Generator struct {
	client     llm.Client
	schemasDir string
}

// NewGenerator creates a generator backed by the given LLM client.
func NewGenerator(client llm.Client, schemasDir string) *Generator {
	return &Generator{client: client, schemasDir: schemasDir}
}

// Generate asks the model for complete sectioned content following the
// category's structure schema. Output that cannot be parsed as a content
// document degrades to deterministic fallback content built from the schema
// placeholders and extracted data.
func (g *Generator) Generate(ctx context.Context, category types.DocumentCategory, scenario string, data types.ExtractedData) (*types.ContentDocument, error) {
	structure, err := LoadStructure(g.schemasDir, category)
	if err != nil {
		return nil, err
	}

	raw, err := g.client.GenerateJSON(ctx, contentPrompt(category, scenario, data, structure), llm.TierStandard)
	if err != nil {
		log.Printf("[GENERATE] Content generation failed (%v), using fallback content", err)
		return FallbackContent(category, data, structure), nil
	}

	var content types.ContentDocument
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &content); err != nil {
		log.Printf("[GENERATE] Could not parse generated content (%v), using fallback content", err)
		return FallbackContent(category, data, structure), nil
	}
	return &content, nil
}

// FallbackContent builds a content document directly from the structure
// schema, substituting extracted data into placeholder text. Signature
// sections get category-correct party lines.
func FallbackContent(category types.DocumentCategory, data types.ExtractedData, structure []SectionTemplate) *types.ContentDocument {
	content := &types.ContentDocument{
		Title: fmt.Sprintf("%s Document", category),
	}
	for i, tmpl := range structure {
		text := tmpl.Text
		for key, value := range data {
			text = strings.ReplaceAll(text, "["+key+"]", value)
		}

		sectionType := tmpl.Type
		if sectionType == "" {
			sectionType = types.SectionParagraph
		}
		if sectionType == types.SectionSignature {
			text = fallbackSignature(category, data)
		}

		content.Sections = append(content.Sections, types.NamedSection{
			Name:    fmt.Sprintf("section_%d", i+1),
			Section: types.Section{Type: sectionType, Content: text},
		})
	}
	return content
}

func fallbackSignature(category types.DocumentCategory, data types.ExtractedData) string {
	name := data["Name"]
	if name == "" {
		name = "[Name]"
	}
	disclosing := "Disclosing Party: " + name + "\n\n" + assemble.SignatureRule
	if category.RequiresSingleSignature() {
		return disclosing
	}

	company := data["Company"]
	if company == "" {
		company = "[Company]"
	}
	return disclosing + "\n\n\nReceiving Party: " + company + "\n\n" + assemble.SignatureRule
}

func contentPrompt(category types.DocumentCategory, scenario string, data types.ExtractedData, structure []SectionTemplate) string {
	structureJSON, _ := json.MarshalIndent(structure, "", "  ")
	dataJSON, _ := json.Marshal(data)

	return fmt.Sprintf(`You are an expert legal document generator. Generate a complete %[1]s document based on the following information:

Document Type: %[1]s
Scenario: %[2]s
Extracted Data: %[3]s

Generate a professional, legally sound document with the following structure:
%[4]s

Return the content as a JSON object where each key corresponds to a section from the structure,
and the value contains the actual content for that section. Use the extracted data to fill in
placeholders like [Name], [Company], [Date], etc.

IMPORTANT FORMATTING RULES:
1. Do NOT include the document title in the sections - only in the "title" field
2. For signature sections, do NOT number them (e.g., use "Signatures" not "9. Signatures")
3. Use proper legal document formatting with clear section numbering for main clauses
4. Make sure all content is professional and legally appropriate
5. For NDA: Only include Disclosing Party signature (single party)
6. For all other document types: Include both Disclosing Party and Receiving Party signatures

Format your response as valid JSON with this structure:
{
    "title": "Document Title",
    "sections": {
        "section_name_1": {
            "type": "Heading 1",
            "content": "Section content here"
        },
        "section_name_2": {
            "type": "Paragraph",
            "content": "Section content here"
        },
        "signatures": {
            "type": "Signature",
            "content": "Disclosing Party: [Name]\n\n_____________________________"
        }
    }
}

Make sure the content is professional, legally appropriate, and uses the provided data accurately.`,
		category, scenario, dataJSON, structureJSON)
}
