package styles

import (
	"log"

	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Scan builds a style profile from the paragraphs of a reference template.
// The first paragraph seen for each style name wins; later paragraphs with
// the same style are ignored. Fields a paragraph does not set fall back to
// neutral values rather than the global defaults, so a scanned profile
// reflects what the template actually specifies.
func Scan(ref *docx.Container) Profile {
	profile := Profile{}
	for _, f := range ref.ParagraphFormats() {
		if _, seen := profile[f.StyleName]; seen {
			continue
		}
		profile[f.StyleName] = specFromFormat(f)
	}
	return profile
}

func specFromFormat(f docx.ParagraphFormat) StyleSpec {
	spec := StyleSpec{
		Font:        f.Font,
		Size:        f.Size,
		Bold:        f.Bold,
		Italic:      f.Italic,
		Underline:   f.Underline,
		Align:       f.Align,
		Spacing:     f.Spacing,
		IndentLeft:  f.IndentLeft,
		IndentRight: f.IndentRight,
	}
	if spec.Font == "" {
		spec.Font = "Default"
	}
	if spec.Size == 0 {
		spec.Size = 12
	}
	if spec.Align == "" {
		spec.Align = AlignLeft
	}
	if spec.Spacing == 0 {
		spec.Spacing = 1.0
	}
	return spec
}

// Resolver produces the style profile for a document generation run.
type Resolver struct {
	store *Store
}

// NewResolver creates a resolver backed by the given style file store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve determines the style profile for a category. A reference template
// takes precedence; without one the per-category style file is used, and when
// that is missing or unreadable the global defaults apply. Resolution never
// fails: every degradation is logged and the result always contains all
// essential style names.
func (r *Resolver) Resolve(ref *docx.Container, category types.DocumentCategory) Profile {
	var profile Profile
	switch {
	case ref != nil:
		profile = Scan(ref)
		log.Printf("[STYLES] Extracted %d styles from reference template for %s", len(profile), category)
	default:
		loaded, err := r.store.Load(category)
		if err != nil {
			log.Printf("[STYLES] No custom style for %s (%v), using base styles", category, err)
			profile = Defaults()
		} else {
			log.Printf("[STYLES] Loaded custom style file for %s", category)
			profile = loaded
		}
	}
	profile.FillEssential()
	return profile
}
