// Package assemble turns a structured content document and a resolved style
// profile into an ordered list of render instructions.
package assemble

import "github.com/priyansh/legal-doc-agent/internal/styles"

// Instruction kinds.
const (
	KindTitle          = "title"
	KindBody           = "body"
	KindSignatureBlock = "signature_block"
)

// RenderInstruction is one ordered unit of output content with its resolved
// formatting. It lives only for the duration of a single assembly call.
type RenderInstruction struct {
	Kind  string
	Text  string
	Style styles.StyleSpec

	// Set only when Kind is KindSignatureBlock.
	Signature *SignatureBlock
}
