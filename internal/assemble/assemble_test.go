package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

func doc(title string, sections ...types.NamedSection) *types.ContentDocument {
	return &types.ContentDocument{Title: title, Sections: sections}
}

func section(name, sectionType, content string) types.NamedSection {
	return types.NamedSection{Name: name, Section: types.Section{Type: sectionType, Content: content}}
}

func TestAssembleTitleUsesHeadingOneStyle(t *testing.T) {
	profile := styles.Defaults()
	instructions := Assemble(doc("Service Contract"), profile, types.CategoryContract)

	require.Len(t, instructions, 1)
	assert.Equal(t, KindTitle, instructions[0].Kind)
	assert.Equal(t, "Service Contract", instructions[0].Text)
	assert.Equal(t, profile["Heading 1"], instructions[0].Style)
}

func TestAssembleTitleFallsBackToNormal(t *testing.T) {
	profile := styles.Profile{
		"Normal": {Font: "Georgia", Size: 11, Align: styles.AlignJustify, Spacing: 1.0},
	}
	instructions := Assemble(doc("MOU"), profile, types.CategoryMOU)

	require.Len(t, instructions, 1)
	assert.Equal(t, profile["Normal"], instructions[0].Style)
}

func TestAssembleEmptyDocument(t *testing.T) {
	assert.Empty(t, Assemble(doc(""), styles.Defaults(), types.CategoryNDA))
}

func TestAssembleSkipsDuplicateTitleHeading(t *testing.T) {
	content := doc("NDA",
		section("s0", types.SectionHeading1, "NDA"),
		section("s1", types.SectionParagraph, "Hello"),
	)
	instructions := Assemble(content, styles.Defaults(), types.CategoryNDA)

	require.Len(t, instructions, 2)
	assert.Equal(t, KindTitle, instructions[0].Kind)
	assert.Equal(t, "NDA", instructions[0].Text)
	assert.Equal(t, "Hello", instructions[1].Text)
}

func TestAssembleKeepsHeadingWithDifferentText(t *testing.T) {
	content := doc("NDA",
		section("s0", types.SectionHeading1, "Definitions"),
	)
	instructions := Assemble(content, styles.Defaults(), types.CategoryNDA)

	require.Len(t, instructions, 2)
	assert.Equal(t, "Definitions", instructions[1].Text)
	assert.Equal(t, KindBody, instructions[1].Kind)
}

func TestAssembleForcesJustifiedBodyText(t *testing.T) {
	profile := styles.Defaults()
	profile["Paragraph"] = profile["Paragraph"].WithAlign(styles.AlignCenter)
	profile["Normal"] = profile["Normal"].WithAlign(styles.AlignRight)

	content := doc("Contract",
		section("s1", types.SectionParagraph, "one"),
		section("s2", types.SectionNormal, "two"),
		section("s3", types.SectionHeading2, "three"),
	)
	instructions := Assemble(content, profile, types.CategoryContract)

	require.Len(t, instructions, 4)
	assert.Equal(t, styles.AlignJustify, instructions[1].Style.Align)
	assert.Equal(t, styles.AlignJustify, instructions[2].Style.Align)
	assert.Equal(t, profile["Heading 2"].Align, instructions[3].Style.Align)
}

func TestAssembleUnknownTypeTreatedAsNormal(t *testing.T) {
	content := doc("",
		section("s1", "Blockquote", "unexpected"),
	)
	instructions := Assemble(content, styles.Defaults(), types.CategoryContract)

	require.Len(t, instructions, 1)
	assert.Equal(t, KindBody, instructions[0].Kind)
	assert.Equal(t, styles.AlignJustify, instructions[0].Style.Align)
	assert.Equal(t, "unexpected", instructions[0].Text)
}

func TestAssemblePreservesSectionOrder(t *testing.T) {
	content := doc("Offer",
		section("intro", types.SectionParagraph, "first"),
		section("terms", types.SectionHeading2, "second"),
		section("body", types.SectionParagraph, "third"),
	)
	instructions := Assemble(content, styles.Defaults(), types.CategoryOfferLetter)

	require.Len(t, instructions, 4)
	assert.Equal(t, "first", instructions[1].Text)
	assert.Equal(t, "second", instructions[2].Text)
	assert.Equal(t, "third", instructions[3].Text)
}

func TestAssembleDelegatesSignatureSections(t *testing.T) {
	content := doc("NDA",
		section("sig", types.SectionSignature, "Disclosing Party: Alice\n\n____"),
	)
	instructions := Assemble(content, styles.Defaults(), types.CategoryNDA)

	require.Len(t, instructions, 2)
	sig := instructions[1]
	assert.Equal(t, KindSignatureBlock, sig.Kind)
	require.NotNil(t, sig.Signature)
	assert.True(t, sig.Signature.Single)
	assert.Equal(t, "Alice", sig.Signature.DisclosingParty)
	assert.Equal(t, styles.Defaults()["Signature"], sig.Style)
}

func TestLayoutSignatureNDADropsReceivingParty(t *testing.T) {
	raw := "Disclosing Party: Alice\nReceiving Party: Bob"
	block := LayoutSignature(raw, styles.Defaults()["Signature"], types.CategoryNDA)

	assert.True(t, block.Single)
	assert.Equal(t, "Alice", block.DisclosingParty)
	assert.Empty(t, block.ReceivingParty)
}

func TestLayoutSignatureDualParty(t *testing.T) {
	for _, category := range []types.DocumentCategory{
		types.CategoryContract,
		types.CategoryMOU,
		types.CategoryIPAgreement,
		types.CategoryOfferLetter,
	} {
		block := LayoutSignature("Disclosing Party: Acme Corp\nReceiving Party: Jane Doe", styles.Defaults()["Signature"], category)
		assert.False(t, block.Single, "category %s", category)
		assert.Equal(t, "Acme Corp", block.DisclosingParty)
		assert.Equal(t, "Jane Doe", block.ReceivingParty)
	}
}

func TestLayoutSignatureUnparseableYieldsEmptyValues(t *testing.T) {
	block := LayoutSignature("Signed in good faith.", styles.Defaults()["Signature"], types.CategoryContract)
	assert.Empty(t, block.DisclosingParty)
	assert.Empty(t, block.ReceivingParty)
	assert.False(t, block.Single)
}

func TestSignatureBlockText(t *testing.T) {
	block := SignatureBlock{DisclosingParty: "Alice", ReceivingParty: "Bob"}
	assert.Equal(t, "Disclosing Party:\nAlice\n\n"+SignatureRule, block.DisclosingText())
	assert.Equal(t, "Receiving Party:\nBob\n\n"+SignatureRule, block.ReceivingText())
}
