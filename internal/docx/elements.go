package docx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// BodyElement is any element that can appear in a document body.
type BodyElement interface {
	isBodyElement()
}

// Body holds the ordered list of body elements.
type Body struct {
	Elements []BodyElement `xml:"-"`
}

// UnmarshalXML decodes paragraphs and tables while preserving their order.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &table)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
	return nil
}

// Paragraph represents a paragraph in the document.
type Paragraph struct {
	Properties *ParagraphProperties `xml:"pPr"`
	Runs       []Run                `xml:"r"`
}

func (p Paragraph) isBodyElement() {}

// MarshalXML writes the paragraph with w:-prefixed element names.
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Properties != nil {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: xml.Name{Local: "w:pPr"}}); err != nil {
			return err
		}
	}
	for _, run := range p.Runs {
		if err := e.EncodeElement(&run, xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		if run.Text != nil {
			sb.WriteString(run.Text.Content)
		}
	}
	return sb.String()
}

// ParagraphProperties represents paragraph formatting (w:pPr).
type ParagraphProperties struct {
	Style       *StyleRef    `xml:"pStyle"`
	Alignment   *Alignment   `xml:"jc"`
	Spacing     *Spacing     `xml:"spacing"`
	Indentation *Indentation `xml:"ind"`
}

// MarshalXML writes paragraph properties in the order Word expects.
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pPr"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: xml.Name{Local: "w:pStyle"}}); err != nil {
			return err
		}
	}
	if p.Spacing != nil {
		if err := e.EncodeElement(p.Spacing, xml.StartElement{Name: xml.Name{Local: "w:spacing"}}); err != nil {
			return err
		}
	}
	if p.Indentation != nil {
		if err := e.EncodeElement(p.Indentation, xml.StartElement{Name: xml.Name{Local: "w:ind"}}); err != nil {
			return err
		}
	}
	if p.Alignment != nil {
		if err := e.EncodeElement(p.Alignment, xml.StartElement{Name: xml.Name{Local: "w:jc"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// StyleRef is a reference to a named style (w:pStyle).
type StyleRef struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes the style reference as a self-closing element.
func (s StyleRef) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: s.Val}}
	return e.EncodeElement(struct{}{}, start)
}

// Alignment represents paragraph justification (w:jc).
type Alignment struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes the alignment as a self-closing element.
func (a Alignment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: a.Val}}
	return e.EncodeElement(struct{}{}, start)
}

// Spacing represents paragraph spacing (w:spacing). Line is in 240ths of a
// line when LineRule is "auto".
type Spacing struct {
	Before   int    `xml:"before,attr"`
	After    int    `xml:"after,attr"`
	Line     int    `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

// MarshalXML writes only the attributes that are set.
func (s Spacing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = nil
	if s.Before != 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:before"}, Value: fmt.Sprintf("%d", s.Before)})
	}
	if s.After != 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:after"}, Value: fmt.Sprintf("%d", s.After)})
	}
	if s.Line != 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:line"}, Value: fmt.Sprintf("%d", s.Line)})
	}
	if s.LineRule != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:lineRule"}, Value: s.LineRule})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Indentation represents paragraph indentation in twips (w:ind).
type Indentation struct {
	Left  int `xml:"left,attr"`
	Right int `xml:"right,attr"`
}

// MarshalXML writes the indentation as a self-closing element.
func (i Indentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:left"}, Value: fmt.Sprintf("%d", i.Left)},
		{Name: xml.Name{Local: "w:right"}, Value: fmt.Sprintf("%d", i.Right)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Run represents a run of text with shared formatting.
type Run struct {
	Properties *RunProperties `xml:"rPr"`
	Text       *Text          `xml:"t"`
	Break      *Break         `xml:"br"`
}

// MarshalXML writes the run with w:-prefixed element names.
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Properties != nil {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	if r.Break != nil {
		if err := e.EncodeElement(r.Break, xml.StartElement{Name: xml.Name{Local: "w:br"}}); err != nil {
			return err
		}
	}
	if r.Text != nil {
		if err := e.EncodeElement(r.Text, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// RunProperties represents run formatting (w:rPr).
type RunProperties struct {
	Font      *Fonts         `xml:"rFonts"`
	Bold      *BoolProperty  `xml:"b"`
	Italic    *BoolProperty  `xml:"i"`
	Underline *UnderlineType `xml:"u"`
	Size      *HalfPointSize `xml:"sz"`
}

// MarshalXML writes run properties in the order Word expects.
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rPr"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Font != nil {
		if err := e.EncodeElement(p.Font, xml.StartElement{Name: xml.Name{Local: "w:rFonts"}}); err != nil {
			return err
		}
	}
	if p.Bold != nil {
		if err := e.EncodeElement(p.Bold, xml.StartElement{Name: xml.Name{Local: "w:b"}}); err != nil {
			return err
		}
	}
	if p.Italic != nil {
		if err := e.EncodeElement(p.Italic, xml.StartElement{Name: xml.Name{Local: "w:i"}}); err != nil {
			return err
		}
	}
	if p.Underline != nil {
		if err := e.EncodeElement(p.Underline, xml.StartElement{Name: xml.Name{Local: "w:u"}}); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: xml.Name{Local: "w:sz"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Fonts represents run font assignment (w:rFonts).
type Fonts struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

// MarshalXML writes the font assignment as a self-closing element.
func (f Fonts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:ascii"}, Value: f.ASCII},
		{Name: xml.Name{Local: "w:hAnsi"}, Value: f.HAnsi},
	}
	return e.EncodeElement(struct{}{}, start)
}

// BoolProperty represents an on/off run property such as w:b or w:i. The
// element being present means enabled unless val explicitly disables it.
type BoolProperty struct {
	Val string `xml:"val,attr"`
}

// Enabled reports whether the property is turned on.
func (b *BoolProperty) Enabled() bool {
	if b == nil {
		return false
	}
	return b.Val != "0" && b.Val != "false" && b.Val != "none"
}

// MarshalXML writes the property as a bare self-closing element.
func (b BoolProperty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = nil
	if b.Val != "" {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: b.Val}}
	}
	return e.EncodeElement(struct{}{}, start)
}

// UnderlineType represents underline formatting (w:u).
type UnderlineType struct {
	Val string `xml:"val,attr"`
}

// Enabled reports whether the underline is visible.
func (u *UnderlineType) Enabled() bool {
	return u != nil && u.Val != "" && u.Val != "none"
}

// MarshalXML writes the underline as a self-closing element.
func (u UnderlineType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: u.Val}}
	return e.EncodeElement(struct{}{}, start)
}

// HalfPointSize represents font size in half-points (w:sz).
type HalfPointSize struct {
	Val int `xml:"val,attr"`
}

// MarshalXML writes the size as a self-closing element.
func (s HalfPointSize) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: fmt.Sprintf("%d", s.Val)}}
	return e.EncodeElement(struct{}{}, start)
}

// Break represents a line break (w:br).
type Break struct {
	Type string `xml:"type,attr"`
}

// MarshalXML writes the break as a self-closing element.
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	start.Attr = nil
	if b.Type != "" {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:type"}, Value: b.Type}}
	}
	return e.EncodeElement(struct{}{}, start)
}

// Text represents run text content (w:t).
type Text struct {
	Space   string `xml:"space,attr,omitempty"`
	Content string `xml:",chardata"`
}

// MarshalXML writes the text, preserving significant whitespace.
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:t"}
	start.Attr = nil
	if t.Space != "" || t.Content != strings.TrimSpace(t.Content) {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}}
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.Content)); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
