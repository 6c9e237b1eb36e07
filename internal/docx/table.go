package docx

import (
	"encoding/xml"
	"fmt"
)

// Table represents a table in the document body.
type Table struct {
	Properties *TableProperties `xml:"tblPr"`
	Grid       *TableGrid       `xml:"tblGrid"`
	Rows       []TableRow       `xml:"tr"`
}

func (t Table) isBodyElement() {}

// MarshalXML writes the table with w:-prefixed element names.
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tbl"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if t.Properties != nil {
		if err := e.EncodeElement(t.Properties, xml.StartElement{Name: xml.Name{Local: "w:tblPr"}}); err != nil {
			return err
		}
	}
	if t.Grid != nil {
		if err := e.EncodeElement(t.Grid, xml.StartElement{Name: xml.Name{Local: "w:tblGrid"}}); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := e.EncodeElement(&row, xml.StartElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table formatting (w:tblPr).
type TableProperties struct {
	Width   *TableWidth   `xml:"tblW"`
	Borders *TableBorders `xml:"tblBorders"`
	Layout  *TableLayout  `xml:"tblLayout"`
}

// MarshalXML writes table properties in the order Word expects.
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblPr"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: xml.Name{Local: "w:tblW"}}); err != nil {
			return err
		}
	}
	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: xml.Name{Local: "w:tblBorders"}}); err != nil {
			return err
		}
	}
	if p.Layout != nil {
		if err := e.EncodeElement(p.Layout, xml.StartElement{Name: xml.Name{Local: "w:tblLayout"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableWidth represents a table or cell width (w:tblW, w:tcW).
type TableWidth struct {
	Type string `xml:"type,attr"`
	Val  int    `xml:"w,attr"`
}

// MarshalXML writes the width as a self-closing element.
func (w TableWidth) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:w"}, Value: fmt.Sprintf("%d", w.Val)},
		{Name: xml.Name{Local: "w:type"}, Value: w.Type},
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableLayout represents the table layout algorithm (w:tblLayout).
type TableLayout struct {
	Type string `xml:"type,attr"`
}

// MarshalXML writes the layout as a self-closing element.
func (t TableLayout) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblLayout"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:type"}, Value: t.Type}}
	return e.EncodeElement(struct{}{}, start)
}

// TableGrid represents table column definitions (w:tblGrid).
type TableGrid struct {
	Columns []GridColumn `xml:"gridCol"`
}

// MarshalXML writes the grid with w:-prefixed element names.
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblGrid"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range g.Columns {
		if err := e.EncodeElement(&col, xml.StartElement{Name: xml.Name{Local: "w:gridCol"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn represents a table column width in twips (w:gridCol).
type GridColumn struct {
	Width int `xml:"w,attr"`
}

// MarshalXML writes the column as a self-closing element.
func (g GridColumn) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:gridCol"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:w"}, Value: fmt.Sprintf("%d", g.Width)}}
	return e.EncodeElement(struct{}{}, start)
}

// TableRow represents a row in a table.
type TableRow struct {
	Cells []TableCell `xml:"tc"`
}

// MarshalXML writes the row with w:-prefixed element names.
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tr"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, cell := range r.Cells {
		if err := e.EncodeElement(&cell, xml.StartElement{Name: xml.Name{Local: "w:tc"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a cell in a table row.
type TableCell struct {
	Properties *TableCellProperties `xml:"tcPr"`
	Paragraphs []Paragraph          `xml:"p"`
}

// MarshalXML writes the cell with w:-prefixed element names. A cell must
// contain at least one paragraph to be valid, so an empty one is added when
// none are present.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tc"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if c.Properties != nil {
		if err := e.EncodeElement(c.Properties, xml.StartElement{Name: xml.Name{Local: "w:tcPr"}}); err != nil {
			return err
		}
	}
	paragraphs := c.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{}}
	}
	for _, para := range paragraphs {
		if err := e.EncodeElement(&para, xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCellProperties represents cell formatting (w:tcPr).
type TableCellProperties struct {
	Width    *TableWidth       `xml:"tcW"`
	GridSpan *GridSpan         `xml:"gridSpan"`
	Borders  *TableCellBorders `xml:"tcBorders"`
}

// MarshalXML writes cell properties in the order Word expects.
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tcPr"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: xml.Name{Local: "w:tcW"}}); err != nil {
			return err
		}
	}
	if p.GridSpan != nil {
		if err := e.EncodeElement(p.GridSpan, xml.StartElement{Name: xml.Name{Local: "w:gridSpan"}}); err != nil {
			return err
		}
	}
	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: xml.Name{Local: "w:tcBorders"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridSpan represents a cell column span (w:gridSpan).
type GridSpan struct {
	Val int `xml:"val,attr"`
}

// MarshalXML writes the span as a self-closing element.
func (g GridSpan) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:gridSpan"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: fmt.Sprintf("%d", g.Val)}}
	return e.EncodeElement(struct{}{}, start)
}

// TableBorders represents borders for a whole table (w:tblBorders).
type TableBorders struct {
	Top     *BorderProperties `xml:"top"`
	Left    *BorderProperties `xml:"left"`
	Bottom  *BorderProperties `xml:"bottom"`
	Right   *BorderProperties `xml:"right"`
	InsideH *BorderProperties `xml:"insideH"`
	InsideV *BorderProperties `xml:"insideV"`
}

// MarshalXML writes the table borders in the order Word expects.
func (b TableBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblBorders"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, border := range []struct {
		name string
		prop *BorderProperties
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideH},
		{"w:insideV", b.InsideV},
	} {
		if border.prop == nil {
			continue
		}
		if err := e.EncodeElement(border.prop, xml.StartElement{Name: xml.Name{Local: border.name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCellBorders represents borders for a single cell (w:tcBorders).
type TableCellBorders struct {
	Top    *BorderProperties `xml:"top"`
	Left   *BorderProperties `xml:"left"`
	Bottom *BorderProperties `xml:"bottom"`
	Right  *BorderProperties `xml:"right"`
}

// MarshalXML writes the cell borders in the order Word expects.
func (b TableCellBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tcBorders"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, border := range []struct {
		name string
		prop *BorderProperties
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
	} {
		if border.prop == nil {
			continue
		}
		if err := e.EncodeElement(border.prop, xml.StartElement{Name: xml.Name{Local: border.name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// BorderProperties represents a single border edge.
type BorderProperties struct {
	Val string `xml:"val,attr"`
	Sz  string `xml:"sz,attr"`
}

// NilBorder is the border value that suppresses a visible edge.
func NilBorder() *BorderProperties {
	return &BorderProperties{Val: "nil"}
}

// MarshalXML writes the border as a self-closing element.
func (b BorderProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: b.Val}}
	if b.Sz != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:sz"}, Value: b.Sz})
	}
	return e.EncodeElement(struct{}{}, start)
}
