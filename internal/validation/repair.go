package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Agent validates generated content and repairs placeholder issues with an
// LLM pass. Repair is best-effort: if the model cannot produce usable output
// the original content is returned unchanged.
type Agent struct {
	client llm.Client
}

// NewAgent creates a validation agent backed by the given LLM client.
func NewAgent(client llm.Client) *Agent {
	return &Agent{client: client}
}

// Validate checks content for leftover placeholders and structural issues.
// Placeholder issues trigger an LLM repair pass; the repaired content is kept
// only when it passes structural validation. Validation never fails the
// pipeline, it returns the best content it has.
func (a *Agent) Validate(ctx context.Context, category types.DocumentCategory, content *types.ContentDocument, requiredFields []string) *types.ContentDocument {
	issues := FindPlaceholders(content)
	if len(issues) == 0 {
		result := ValidateStructure(category, content)
		if !result.IsValid {
			log.Printf("[VALIDATE] Structural issues in %s content: %s", category, strings.Join(result.Issues, "; "))
		}
		return content
	}

	log.Printf("[VALIDATE] Found %d placeholder issues in %s content", len(issues), category)
	repaired, err := a.repairPlaceholders(ctx, category, content, issues, requiredFields)
	if err != nil {
		log.Printf("[VALIDATE] Placeholder repair failed (%v), keeping original content", err)
		return content
	}

	if result := ValidateStructure(category, repaired); !result.IsValid {
		log.Printf("[VALIDATE] Repaired content failed structural validation: %s", strings.Join(result.Issues, "; "))
		return content
	}
	return repaired
}

func (a *Agent) repairPlaceholders(ctx context.Context, category types.DocumentCategory, content *types.ContentDocument, issues []PlaceholderIssue, requiredFields []string) (*types.ContentDocument, error) {
	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, err
	}

	var issueLines []string
	for _, issue := range issues {
		issueLines = append(issueLines, "- "+issue.String())
	}

	prompt := fmt.Sprintf(`You are a legal document expert. Fix the following %[1]s document by addressing placeholder issues.

Current document content:
%[2]s

Issues found:
%[3]s

Required fields for %[1]s: %[4]s

Instructions:
1. Remove any placeholders that are not required fields
2. For required fields that have placeholders, either:
   - Fill them with appropriate generic text if the field is missing
   - Remove the placeholder and its surrounding text if it's not essential
3. Ensure the document remains legally sound and professional
4. Maintain proper document structure and formatting

Return the corrected content in the same JSON format.`,
		category, contentJSON, strings.Join(issueLines, "\n"), strings.Join(requiredFields, ", "))

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var repaired types.ContentDocument
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &repaired); err != nil {
		return nil, err
	}
	return &repaired, nil
}
