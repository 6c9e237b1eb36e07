package docx

import "encoding/xml"

// ParagraphFormat is the observed formatting of one paragraph in a template,
// expressed in document units: points for size and indents, a multiplier for
// line spacing.
type ParagraphFormat struct {
	StyleName   string
	Text        string
	Font        string
	Size        float64
	Bold        bool
	Italic      bool
	Underline   bool
	Align       string
	Spacing     float64
	IndentLeft  float64
	IndentRight float64
}

// Built-in style ids that templates reference without defining a display name
// in styles.xml.
var builtinStyleNames = map[string]string{
	"Heading1": "Heading 1",
	"Heading2": "Heading 2",
	"Heading3": "Heading 3",
	"Title":    "Title",
	"Normal":   "Normal",
}

// parseStyleNames maps styleId to display name from word/styles.xml. A nil or
// unparseable payload yields an empty map; callers fall back to built-in ids.
func parseStyleNames(stylesXML []byte) map[string]string {
	names := make(map[string]string)
	if stylesXML == nil {
		return names
	}

	var doc struct {
		Styles []struct {
			ID   string `xml:"styleId,attr"`
			Name struct {
				Val string `xml:"val,attr"`
			} `xml:"name"`
		} `xml:"style"`
	}
	if err := xml.Unmarshal(stylesXML, &doc); err != nil {
		return names
	}
	for _, s := range doc.Styles {
		if s.ID != "" && s.Name.Val != "" {
			names[s.ID] = s.Name.Val
		}
	}
	return names
}

// styleName resolves a pStyle id to its display name. Unknown ids fall back
// to built-in aliases, then to the id itself.
func (c *Container) styleName(id string) string {
	if name, ok := c.styleNames[id]; ok {
		return name
	}
	if name, ok := builtinStyleNames[id]; ok {
		return name
	}
	return id
}

// ParagraphFormats extracts the formatting of every paragraph in the body, in
// document order. Paragraphs with no explicit style reference report "Normal".
// Formatting is read from direct paragraph and first-run properties only;
// values a paragraph does not set are left at their zero value for the caller
// to default.
func (c *Container) ParagraphFormats() []ParagraphFormat {
	var formats []ParagraphFormat
	for _, elem := range c.elements {
		para, ok := elem.(*Paragraph)
		if !ok {
			continue
		}
		formats = append(formats, c.paragraphFormat(para))
	}
	return formats
}

func (c *Container) paragraphFormat(para *Paragraph) ParagraphFormat {
	f := ParagraphFormat{
		StyleName: "Normal",
		Text:      para.Text(),
	}

	if props := para.Properties; props != nil {
		if props.Style != nil && props.Style.Val != "" {
			f.StyleName = c.styleName(props.Style.Val)
		}
		if props.Alignment != nil {
			f.Align = props.Alignment.Val
		}
		if props.Spacing != nil && props.Spacing.Line > 0 {
			f.Spacing = float64(props.Spacing.Line) / 240.0
		}
		if props.Indentation != nil {
			f.IndentLeft = float64(props.Indentation.Left) / 20.0
			f.IndentRight = float64(props.Indentation.Right) / 20.0
		}
	}

	// Run formatting comes from the first run; templates that mix run styles
	// within one paragraph contribute the leading run's look.
	if len(para.Runs) > 0 {
		if rp := para.Runs[0].Properties; rp != nil {
			if rp.Font != nil {
				f.Font = rp.Font.ASCII
			}
			if rp.Size != nil {
				f.Size = float64(rp.Size.Val) / 2.0
			}
			f.Bold = rp.Bold.Enabled()
			f.Italic = rp.Italic.Enabled()
			f.Underline = rp.Underline.Enabled()
		}
	}
	return f
}
