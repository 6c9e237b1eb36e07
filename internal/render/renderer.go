// Package render writes assembled instructions into a document container,
// replacing the body while keeping the template's header/footer framing.
package render

import (
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/assemble"
	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/styles"
)

// Signature table geometry: two 3-inch columns.
const signatureColumnTwips = 4320

// RenderFile opens the template at templatePath, renders the instructions
// into it, and saves the result to outputPath. A template that cannot be
// opened is a fatal precondition.
func RenderFile(instructions []assemble.RenderInstruction, templatePath, outputPath string) error {
	container, err := docx.Open(templatePath)
	if err != nil {
		return &TemplateError{Path: templatePath, Cause: err}
	}
	return Render(instructions, container, outputPath)
}

// Render clears the container body, writes every instruction in order, and
// saves the result. Header/footer parts of the container are untouched. The
// write overwrites any existing file at outputPath.
func Render(instructions []assemble.RenderInstruction, container *docx.Container, outputPath string) error {
	if container == nil {
		return &TemplateError{Path: outputPath}
	}

	container.ClearBody()
	for _, inst := range instructions {
		if inst.Kind == assemble.KindSignatureBlock && inst.Signature != nil {
			appendSignature(container, *inst.Signature)
			continue
		}
		container.AppendParagraph(styledParagraph(inst.Text, inst.Style))
	}

	if err := container.Save(outputPath); err != nil {
		return &RenderError{Message: "failed to save document", Cause: err}
	}
	return nil
}

func appendSignature(container *docx.Container, block assemble.SignatureBlock) {
	if block.Single {
		container.AppendParagraph(styledParagraph(block.DisclosingText(), block.Style))
		container.AppendParagraph(styledParagraph(assemble.DateLine, block.Style))
		return
	}
	container.AppendTable(signatureTable(block))
}

// signatureTable builds the dual-party layout: one row with both parties in
// equal-width borderless cells, then a merged row holding the date line.
func signatureTable(block assemble.SignatureBlock) *docx.Table {
	return &docx.Table{
		Properties: &docx.TableProperties{
			Width:  &docx.TableWidth{Type: "dxa", Val: 2 * signatureColumnTwips},
			Layout: &docx.TableLayout{Type: "fixed"},
		},
		Grid: &docx.TableGrid{Columns: []docx.GridColumn{
			{Width: signatureColumnTwips},
			{Width: signatureColumnTwips},
		}},
		Rows: []docx.TableRow{
			{Cells: []docx.TableCell{
				signatureCell(block.DisclosingText(), block.Style, 1),
				signatureCell(block.ReceivingText(), block.Style, 1),
			}},
			{Cells: []docx.TableCell{
				signatureCell(assemble.DateLine, block.Style, 2),
			}},
		},
	}
}

func signatureCell(text string, spec styles.StyleSpec, span int) docx.TableCell {
	cell := docx.TableCell{
		Properties: &docx.TableCellProperties{
			Width: &docx.TableWidth{Type: "dxa", Val: span * signatureColumnTwips},
			Borders: &docx.TableCellBorders{
				Top:    docx.NilBorder(),
				Left:   docx.NilBorder(),
				Bottom: docx.NilBorder(),
				Right:  docx.NilBorder(),
			},
		},
		Paragraphs: []docx.Paragraph{*styledParagraph(text, spec)},
	}
	if span > 1 {
		cell.Properties.GridSpan = &docx.GridSpan{Val: span}
	}
	return cell
}

// styledParagraph builds a paragraph carrying the full style spec. Newlines
// in the text become in-paragraph line breaks.
func styledParagraph(text string, spec styles.StyleSpec) *docx.Paragraph {
	para := &docx.Paragraph{Properties: paragraphProperties(spec)}
	runProps := runProperties(spec)
	for i, line := range strings.Split(text, "\n") {
		run := docx.Run{Properties: runProps}
		if i > 0 {
			run.Break = &docx.Break{}
		}
		if line != "" {
			run.Text = &docx.Text{Content: line}
		}
		para.Runs = append(para.Runs, run)
	}
	return para
}

func paragraphProperties(spec styles.StyleSpec) *docx.ParagraphProperties {
	props := &docx.ParagraphProperties{}
	if spec.Align != "" {
		props.Alignment = &docx.Alignment{Val: spec.Align}
	}
	if spec.Spacing > 0 {
		props.Spacing = &docx.Spacing{
			Line:     int(spec.Spacing * 240),
			LineRule: "auto",
		}
	}
	if spec.IndentLeft != 0 || spec.IndentRight != 0 {
		props.Indentation = &docx.Indentation{
			Left:  int(spec.IndentLeft * 20),
			Right: int(spec.IndentRight * 20),
		}
	}
	return props
}

func runProperties(spec styles.StyleSpec) *docx.RunProperties {
	props := &docx.RunProperties{}
	if spec.Font != "" {
		props.Font = &docx.Fonts{ASCII: spec.Font, HAnsi: spec.Font}
	}
	if spec.Size > 0 {
		props.Size = &docx.HalfPointSize{Val: int(spec.Size * 2)}
	}
	if spec.Bold {
		props.Bold = &docx.BoolProperty{}
	}
	if spec.Italic {
		props.Italic = &docx.BoolProperty{}
	}
	if spec.Underline {
		props.Underline = &docx.UnderlineType{Val: "single"}
	}
	return props
}
