//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Section type labels as they appear in content documents. Unknown labels are
// treated as Normal by the assembler rather than rejected.
const (
	SectionHeading1  = "Heading 1"
	SectionHeading2  = "Heading 2"
	SectionParagraph = "Paragraph"
	SectionNormal    = "Normal"
	SectionSignature = "Signature"
)

// Section is one named unit of document content with a style type tag.
type Section struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// NamedSection pairs a section with the name it was authored under.
type NamedSection struct {
	Name string
	Section
}

// ContentDocument is the structured content produced by the content generator
// and consumed read-only by the assembler. Section order is authored order
// and is semantically significant, so sections are held as a slice rather
// than a map even though the wire format is a JSON object.
type ContentDocument struct {
	Title    string
	Sections []NamedSection
}

// Section returns the section with the given name, if present.
func (d *ContentDocument) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s.Section, true
		}
	}
	return Section{}, false
}

// contentDocumentWire mirrors the external JSON shape for marshaling.
type contentDocumentWire struct {
	Title    string          `json:"title,omitempty"`
	Sections json.RawMessage `json:"sections,omitempty"`
}

// UnmarshalJSON decodes the wire format while preserving the authored order
// of the sections object, which encoding/json map decoding would lose.
func (d *ContentDocument) UnmarshalJSON(data []byte) error {
	var wire contentDocumentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Title = wire.Title
	d.Sections = nil

	if len(wire.Sections) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(wire.Sections))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read sections: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sections must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read section name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("section name must be a string, got %v", keyTok)
		}

		var sec Section
		if err := dec.Decode(&sec); err != nil {
			return fmt.Errorf("failed to decode section %q: %w", name, err)
		}
		d.Sections = append(d.Sections, NamedSection{Name: name, Section: sec})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("malformed sections object: %w", err)
	}

	return nil
}

// MarshalJSON encodes the document back to the wire format, emitting sections
// in their stored order.
func (d ContentDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if d.Title != "" {
		buf.WriteString(`"title":`)
		title, err := json.Marshal(d.Title)
		if err != nil {
			return nil, err
		}
		buf.Write(title)
		buf.WriteByte(',')
	}

	buf.WriteString(`"sections":{`)
	for i, s := range d.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		sec, err := json.Marshal(s.Section)
		if err != nil {
			return nil, err
		}
		buf.Write(sec)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}
