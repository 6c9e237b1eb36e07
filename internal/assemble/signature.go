package assemble

import (
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Signature rule and date line rendered beneath party names.
const (
	SignatureRule = "_____________________________"
	DateLine      = "Date: _________________"
)

const (
	disclosingLabel = "Disclosing Party:"
	receivingLabel  = "Receiving Party:"
)

// SignatureBlock is the structured signature layout for one document. Single
// blocks render as a vertical paragraph sequence; dual blocks render as a
// borderless two-column table with a merged date row.
type SignatureBlock struct {
	Single          bool
	DisclosingParty string
	ReceivingParty  string
	Style           styles.StyleSpec
}

// LayoutSignature parses party names out of free-text signature content and
// selects the category's layout. Parsing never fails: a party name that is
// absent from the text is rendered as an empty value.
func LayoutSignature(rawText string, style styles.StyleSpec, category types.DocumentCategory) SignatureBlock {
	block := SignatureBlock{
		Single: category.RequiresSingleSignature(),
		Style:  style,
	}
	for _, line := range strings.Split(rawText, "\n") {
		switch {
		case strings.Contains(line, disclosingLabel):
			block.DisclosingParty = strings.TrimSpace(strings.Replace(line, disclosingLabel, "", 1))
		case strings.Contains(line, receivingLabel):
			block.ReceivingParty = strings.TrimSpace(strings.Replace(line, receivingLabel, "", 1))
		}
	}
	if block.Single {
		block.ReceivingParty = ""
	}
	return block
}

// DisclosingText returns the multi-line text of the disclosing party cell or
// paragraph: label, name, and a signature rule.
func (b SignatureBlock) DisclosingText() string {
	return disclosingLabel + "\n" + b.DisclosingParty + "\n\n" + SignatureRule
}

// ReceivingText returns the multi-line text of the receiving party cell.
func (b SignatureBlock) ReceivingText() string {
	return receivingLabel + "\n" + b.ReceivingParty + "\n\n" + SignatureRule
}
