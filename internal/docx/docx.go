// Package docx provides a minimal Word document container: reading paragraph
// formatting from a template, rebuilding the document body, and saving the
// result while passing every other package part (headers, footers, styles,
// media) through untouched.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const documentPath = "word/document.xml"

// Container is an in-memory Word document. The body element list is the only
// mutable region; header/footer parts are preserved verbatim on save.
type Container struct {
	source []byte

	// Raw document.xml split around the body content so the original root
	// element, namespaces, and trailing section properties survive a rewrite.
	bodyPrefix string
	bodySuffix string
	sectPr     string

	elements []BodyElement

	// styleId -> display name, from word/styles.xml
	styleNames map[string]string
}

// Open reads a .docx file from disk.
func Open(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ContainerError{Op: "open", Path: path, Cause: err}
	}
	c, err := OpenBytes(data)
	if err != nil {
		return nil, &ContainerError{Op: "open", Path: path, Cause: err}
	}
	return c, nil
}

// OpenBytes parses a .docx package from raw bytes.
func OpenBytes(data []byte) (*Container, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a valid docx package: %w", err)
	}

	var docXML []byte
	var stylesXML []byte
	for _, f := range zr.File {
		switch f.Name {
		case documentPath:
			docXML, err = readZipFile(f)
		case "word/styles.xml":
			stylesXML, err = readZipFile(f)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
	}
	if docXML == nil {
		return nil, fmt.Errorf("package has no %s", documentPath)
	}

	c := &Container{source: data}
	if err := c.parseDocument(docXML); err != nil {
		return nil, err
	}
	c.styleNames = parseStyleNames(stylesXML)
	return c, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseDocument splits document.xml around the body and decodes the body
// elements. The trailing body-level sectPr carries header/footer references
// and page geometry, so it is captured raw and re-emitted on save.
func (c *Container) parseDocument(docXML []byte) error {
	content := string(docXML)

	bodyOpen := strings.Index(content, "<w:body>")
	bodyClose := strings.LastIndex(content, "</w:body>")
	if bodyOpen == -1 || bodyClose == -1 {
		return fmt.Errorf("document.xml has no body element")
	}
	bodyOpenEnd := bodyOpen + len("<w:body>")

	inner := content[bodyOpenEnd:bodyClose]

	// The last body-level sectPr is kept; everything else in the body is
	// replaceable content.
	if idx := strings.LastIndex(inner, "<w:sectPr"); idx != -1 {
		c.sectPr = inner[idx:]
	}

	c.bodyPrefix = content[:bodyOpenEnd]
	c.bodySuffix = content[bodyClose:]

	doc, err := parseBodyElements(docXML)
	if err != nil {
		return fmt.Errorf("failed to parse document structure: %w", err)
	}
	c.elements = doc
	return nil
}

// parseBodyElements decodes the ordered paragraph/table list from a full
// document.xml payload.
func parseBodyElements(docXML []byte) ([]BodyElement, error) {
	var doc struct {
		XMLName xml.Name `xml:"document"`
		Body    Body     `xml:"body"`
	}
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return nil, err
	}
	return doc.Body.Elements, nil
}

// Elements returns the current body elements in order.
func (c *Container) Elements() []BodyElement {
	return c.elements
}

// ClearBody discards all body content. Header/footer parts and the trailing
// section properties are unaffected.
func (c *Container) ClearBody() {
	c.elements = nil
}

// AppendParagraph appends a paragraph to the body.
func (c *Container) AppendParagraph(p *Paragraph) {
	c.elements = append(c.elements, p)
}

// AppendTable appends a table to the body.
func (c *Container) AppendTable(t *Table) {
	c.elements = append(c.elements, t)
}

// Bytes serializes the container to a complete .docx package. Every part of
// the source package except document.xml is copied verbatim.
func (c *Container) Bytes() ([]byte, error) {
	docXML, err := c.marshalDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document body: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(c.source), int64(len(c.source)))
	if err != nil {
		return nil, fmt.Errorf("failed to reopen source package: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", f.Name, err)
		}
		if f.Name == documentPath {
			if _, err := fw.Write(docXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", f.Name, err)
			}
			continue
		}
		fr, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize package: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes the container to the given path, overwriting any existing file.
func (c *Container) Save(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return &ContainerError{Op: "save", Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ContainerError{Op: "save", Path: path, Cause: err}
	}
	return nil
}

// marshalDocument rebuilds document.xml: original root and namespaces, the
// current body elements, then the preserved section properties.
func (c *Container) marshalDocument() ([]byte, error) {
	var body bytes.Buffer
	enc := xml.NewEncoder(&body)
	for _, elem := range c.elements {
		if err := enc.Encode(elem); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString(c.bodyPrefix)
	out.Write(body.Bytes())
	out.WriteString(c.sectPr)
	out.WriteString(c.bodySuffix)
	return out.Bytes(), nil
}

// ContainerError reports a failure opening or saving a document container.
type ContainerError struct {
	Op    string
	Path  string
	Cause error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("docx %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *ContainerError) Unwrap() error {
	return e.Cause
}
