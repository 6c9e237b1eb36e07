package assemble

import (
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Assemble walks the content document in authored order and produces render
// instructions. Section order is never changed. An empty document yields an
// empty instruction list.
func Assemble(content *types.ContentDocument, profile styles.Profile, category types.DocumentCategory) []RenderInstruction {
	var instructions []RenderInstruction

	// The title is emitted first and remembered so a leading Heading 1
	// section with identical text is not duplicated.
	titleEmitted := false
	if content.Title != "" {
		instructions = append(instructions, RenderInstruction{
			Kind:  KindTitle,
			Text:  content.Title,
			Style: profile.Lookup(types.SectionHeading1),
		})
		titleEmitted = true
	}

	for _, section := range content.Sections {
		sectionType := section.Type
		switch sectionType {
		case types.SectionHeading1, types.SectionHeading2, types.SectionParagraph,
			types.SectionNormal, types.SectionSignature:
		default:
			sectionType = types.SectionNormal
		}

		if titleEmitted && sectionType == types.SectionHeading1 && section.Content == content.Title {
			continue
		}

		if sectionType == types.SectionSignature {
			block := LayoutSignature(section.Content, profile.Lookup(types.SectionSignature), category)
			instructions = append(instructions, RenderInstruction{
				Kind:      KindSignatureBlock,
				Style:     block.Style,
				Signature: &block,
			})
			continue
		}

		spec := profile.Lookup(sectionType)
		// Body text is always justified; template-derived alignment applies
		// to headings only.
		if sectionType == types.SectionParagraph || sectionType == types.SectionNormal {
			spec = spec.WithAlign(styles.AlignJustify)
		}
		instructions = append(instructions, RenderInstruction{
			Kind:  KindBody,
			Text:  section.Content,
			Style: spec,
		})
	}

	return instructions
}
