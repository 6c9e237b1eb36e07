package validation

import (
	"fmt"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Result summarizes a structural validation pass.
type Result struct {
	IsValid bool
	Issues  []string
}

// Sections whose subject matter must appear somewhere in the document body,
// per category. Matching is a lowercase substring check against section
// content.
var essentialSectionTerms = map[types.DocumentCategory][]string{
	types.CategoryNDA:         {"confidential information", "obligations", "term", "signatures"},
	types.CategoryContract:    {"services", "payment", "term", "signatures"},
	types.CategoryOfferLetter: {"position", "compensation", "acceptance", "signatures"},
}

// ValidateStructure checks that the content document has the expected shape
// for its category. A nil content document is reported as invalid rather
// than panicking.
func ValidateStructure(category types.DocumentCategory, content *types.ContentDocument) Result {
	if content == nil {
		return Result{Issues: []string{"content document is missing"}}
	}

	var issues []string
	if content.Title == "" {
		issues = append(issues, "Document title is missing")
	}
	if len(content.Sections) == 0 {
		issues = append(issues, "Document sections are missing")
	}

	if terms, ok := essentialSectionTerms[category]; ok && len(content.Sections) > 0 {
		issues = append(issues, missingEssentialTerms(content, terms, category)...)
	}

	return Result{IsValid: len(issues) == 0, Issues: issues}
}

func missingEssentialTerms(content *types.ContentDocument, terms []string, category types.DocumentCategory) []string {
	var issues []string
	for _, term := range terms {
		found := false
		for _, section := range content.Sections {
			if strings.Contains(strings.ToLower(section.Content), term) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, fmt.Sprintf("Missing essential %s section: %s", category, term))
		}
	}
	return issues
}

// ValidateCategory rejects category values outside the closed set before they
// reach layout selection.
func ValidateCategory(value string) (types.DocumentCategory, error) {
	category, err := types.ParseCategory(value)
	if err != nil {
		return "", &ContentError{Message: "unsupported document type", Cause: err}
	}
	return category, nil
}
