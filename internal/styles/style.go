// Package styles derives paragraph-level style profiles from reference
// templates, per-category style files, or built-in defaults.
package styles

// Alignment values accepted in style specs and the external style file format.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// StyleSpec is a concrete paragraph formatting specification. It is an
// immutable value: components copy it rather than mutate it in place.
type StyleSpec struct {
	Font        string  `json:"font" validate:"required"`
	Size        float64 `json:"size" validate:"gt=0"`
	Bold        bool    `json:"bold"`
	Italic      bool    `json:"italic"`
	Underline   bool    `json:"underline"`
	Align       string  `json:"align" validate:"oneof=left center right justify"`
	Spacing     float64 `json:"spacing" validate:"gt=0"`
	IndentLeft  float64 `json:"indent_left" validate:"gte=0"`
	IndentRight float64 `json:"indent_right" validate:"gte=0"`
}

// WithAlign returns a copy of the spec with the alignment replaced.
func (s StyleSpec) WithAlign(align string) StyleSpec {
	s.Align = align
	return s
}

// Profile maps a semantic style name (e.g. "Heading 1") to its spec.
type Profile map[string]StyleSpec

// Essential style names that every resolved profile must contain.
var EssentialStyles = []string{
	"Heading 1",
	"Heading 2",
	"Normal",
	"Paragraph",
	"Signature",
}

// Defaults returns the global default style table used to fill gaps when no
// reference template or category style file provides a style.
func Defaults() Profile {
	return Profile{
		"Heading 1": {Font: "Calibri Light", Size: 16, Bold: true, Align: AlignCenter, Spacing: 1.0},
		"Heading 2": {Font: "Calibri", Size: 14, Bold: true, Align: AlignLeft, Spacing: 1.0},
		"Normal":    {Font: "Times New Roman", Size: 12, Align: AlignJustify, Spacing: 1.0},
		"Paragraph": {Font: "Times New Roman", Size: 12, Align: AlignJustify, Spacing: 1.0},
		"Signature": {Font: "Times New Roman", Size: 12, Align: AlignLeft, Spacing: 1.5},
	}
}

// Lookup resolves a style name with a fallback chain: the named style, then
// "Normal", then the global default for "Normal". It never fails.
func (p Profile) Lookup(name string) StyleSpec {
	if spec, ok := p[name]; ok {
		return spec
	}
	if spec, ok := p["Normal"]; ok {
		return spec
	}
	return Defaults()["Normal"]
}

// FillEssential ensures every essential style name is present, injecting the
// global default spec for any missing name. Existing entries are kept as-is.
func (p Profile) FillEssential() {
	defaults := Defaults()
	for _, name := range EssentialStyles {
		if _, ok := p[name]; !ok {
			p[name] = defaults[name]
		}
	}
}
