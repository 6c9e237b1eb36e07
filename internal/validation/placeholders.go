package validation

import (
	"fmt"
	"regexp"

	"github.com/priyansh/legal-doc-agent/internal/types"
)

var placeholderPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// PlaceholderIssue reports one unresolved placeholder and where it was found.
type PlaceholderIssue struct {
	Location    string
	Placeholder string
}

func (i PlaceholderIssue) String() string {
	return fmt.Sprintf("%s contains placeholder: [%s]", i.Location, i.Placeholder)
}

// FindPlaceholders scans the title and every section for bracketed
// placeholder text left behind by generation.
func FindPlaceholders(content *types.ContentDocument) []PlaceholderIssue {
	var issues []PlaceholderIssue

	for _, match := range placeholderPattern.FindAllStringSubmatch(content.Title, -1) {
		issues = append(issues, PlaceholderIssue{Location: "Title", Placeholder: match[1]})
	}

	for _, section := range content.Sections {
		for _, match := range placeholderPattern.FindAllStringSubmatch(section.Content, -1) {
			issues = append(issues, PlaceholderIssue{
				Location:    fmt.Sprintf("Section %q", section.Name),
				Placeholder: match[1],
			})
		}
	}
	return issues
}
