package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/llm"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func ndaContent(intro string) *types.ContentDocument {
	return &types.ContentDocument{
		Title: "Non-Disclosure Agreement",
		Sections: []types.NamedSection{
			{Name: "intro", Section: types.Section{Type: types.SectionParagraph, Content: intro}},
			{Name: "confidentiality", Section: types.Section{Type: types.SectionParagraph, Content: "Confidential Information shall mean all disclosed data."}},
			{Name: "obligations", Section: types.Section{Type: types.SectionParagraph, Content: "Obligations of the receiving party."}},
			{Name: "term", Section: types.Section{Type: types.SectionParagraph, Content: "The term of this agreement is two years."}},
			{Name: "signatures", Section: types.Section{Type: types.SectionSignature, Content: "Signatures\nDisclosing Party: Alice"}},
		},
	}
}

func TestFindPlaceholders(t *testing.T) {
	content := &types.ContentDocument{
		Title: "Agreement for [Company]",
		Sections: []types.NamedSection{
			{Name: "intro", Section: types.Section{Type: types.SectionParagraph, Content: "Between [Name] and [Company]."}},
			{Name: "clean", Section: types.Section{Type: types.SectionParagraph, Content: "No placeholders here."}},
		},
	}

	issues := FindPlaceholders(content)
	require.Len(t, issues, 3)
	assert.Equal(t, "Title", issues[0].Location)
	assert.Equal(t, "Company", issues[0].Placeholder)
	assert.Equal(t, `Section "intro"`, issues[1].Location)
	assert.Equal(t, "Name", issues[1].Placeholder)
}

func TestFindPlaceholdersCleanContent(t *testing.T) {
	assert.Empty(t, FindPlaceholders(ndaContent("This agreement is between Alice and TechNova.")))
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name    string
		content *types.ContentDocument
		valid   bool
		issue   string
	}{
		{
			name:    "nil content",
			content: nil,
			valid:   false,
			issue:   "content document is missing",
		},
		{
			name:    "missing title",
			content: &types.ContentDocument{Sections: ndaContent("x").Sections},
			valid:   false,
			issue:   "Document title is missing",
		},
		{
			name:    "missing sections",
			content: &types.ContentDocument{Title: "NDA"},
			valid:   false,
			issue:   "Document sections are missing",
		},
		{
			name:    "complete NDA",
			content: ndaContent("This agreement is made between the parties."),
			valid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateStructure(types.CategoryNDA, tt.content)
			assert.Equal(t, tt.valid, result.IsValid)
			if tt.issue != "" {
				assert.Contains(t, result.Issues, tt.issue)
			}
		})
	}
}

func TestValidateStructureEssentialSections(t *testing.T) {
	content := &types.ContentDocument{
		Title: "Contract",
		Sections: []types.NamedSection{
			{Name: "intro", Section: types.Section{Type: types.SectionParagraph, Content: "An agreement."}},
		},
	}

	result := ValidateStructure(types.CategoryContract, content)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Missing essential Contract section: payment")
	assert.Contains(t, result.Issues, "Missing essential Contract section: signatures")
}

func TestValidateStructureUncheckedCategory(t *testing.T) {
	content := &types.ContentDocument{
		Title: "Memorandum of Understanding",
		Sections: []types.NamedSection{
			{Name: "purpose", Section: types.Section{Type: types.SectionParagraph, Content: "Purpose of this MOU."}},
		},
	}

	// MOU has no essential-section list; shape checks still apply.
	result := ValidateStructure(types.CategoryMOU, content)
	assert.True(t, result.IsValid)
}

func TestValidateCategory(t *testing.T) {
	category, err := ValidateCategory("IP_Agreement")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryIPAgreement, category)

	_, err = ValidateCategory("Lease")
	require.Error(t, err)
	var cerr *ContentError
	assert.ErrorAs(t, err, &cerr)
}

func TestAgentValidateCleanContentSkipsRepair(t *testing.T) {
	client := &fakeClient{}
	agent := NewAgent(client)

	content := ndaContent("This agreement is between Alice and TechNova.")
	result := agent.Validate(context.Background(), types.CategoryNDA, content, []string{"Name"})

	assert.Same(t, content, result)
	assert.Zero(t, client.calls)
}

func TestAgentValidateRepairsPlaceholders(t *testing.T) {
	repaired := ndaContent("This agreement is between Alice Johnson and TechNova Ltd.")
	repairedJSON := `{
		"title": "Non-Disclosure Agreement",
		"sections": {
			"intro": {"type": "Paragraph", "content": "This agreement is between Alice Johnson and TechNova Ltd."},
			"confidentiality": {"type": "Paragraph", "content": "Confidential Information shall mean all disclosed data."},
			"obligations": {"type": "Paragraph", "content": "Obligations of the receiving party."},
			"term": {"type": "Paragraph", "content": "The term of this agreement is two years."},
			"signatures": {"type": "Signature", "content": "Signatures\nDisclosing Party: Alice"}
		}
	}`
	client := &fakeClient{response: repairedJSON}
	agent := NewAgent(client)

	content := ndaContent("This agreement is between [Name] and [Company].")
	result := agent.Validate(context.Background(), types.CategoryNDA, content, []string{"Name", "Company"})

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, repaired.Sections[0].Content, result.Sections[0].Content)
	assert.Empty(t, FindPlaceholders(result))
}

func TestAgentValidateKeepsOriginalOnRepairFailure(t *testing.T) {
	content := ndaContent("Between [Name] and [Company].")

	for _, client := range []*fakeClient{
		{err: errors.New("model unavailable")},
		{response: "garbage output"},
	} {
		result := NewAgent(client).Validate(context.Background(), types.CategoryNDA, content, []string{"Name"})
		assert.Same(t, content, result)
	}
}

func TestAgentValidateRejectsStructurallyBrokenRepair(t *testing.T) {
	// Repair output parses but loses the title: original content wins.
	client := &fakeClient{response: `{"title": "", "sections": {"intro": {"type": "Paragraph", "content": "ok"}}}`}
	agent := NewAgent(client)

	content := ndaContent("Between [Name] and [Company].")
	result := agent.Validate(context.Background(), types.CategoryNDA, content, []string{"Name"})
	assert.Same(t, content, result)
}
