// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads, mutates and writes word-processor documents in the
// zipped-XML package format. The package keeps every part of the archive
// byte-for-byte intact except word/document.xml, which is parsed into an
// XML tree and re-serialized after styling mutations. Embedded media and
// any part the package does not understand pass through unmodified.
//
// The document body is exposed as an ordered sequence of paragraph and
// table views. Views are thin wrappers over the underlying XML elements:
// mutating a view mutates the tree, and nothing is written to disk until
// Save.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// documentPath is the archive entry holding the document body.
const documentPath = "word/document.xml"

// LoadError reports a document that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading document %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a document that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving document %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// part is one archive entry, in original order.
type part struct {
	name string
	data []byte
}

// Document is a loaded word-processor document.
type Document struct {
	parts []part
	xml   *etree.Document
	body  *etree.Element
}

// Open loads the document at path. Structural problems (missing archive,
// missing or malformed document part) surface as *LoadError.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	d, err := openBytes(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// OpenBytes loads a document from an in-memory archive.
func OpenBytes(data []byte) (*Document, error) {
	d, err := openBytes(data)
	if err != nil {
		return nil, &LoadError{Path: "(bytes)", Err: err}
	}
	return d, nil
}

func openBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	d := &Document{}
	var docXML []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		d.parts = append(d.parts, part{name: f.Name, data: content})
		if f.Name == documentPath {
			docXML = content
		}
	}

	if docXML == nil {
		return nil, fmt.Errorf("%s not found in archive", documentPath)
	}
	if err := d.parseDocument(docXML); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) parseDocument(docXML []byte) error {
	x := etree.NewDocument()
	if err := x.ReadFromBytes(docXML); err != nil {
		return fmt.Errorf("parsing %s: %w", documentPath, err)
	}
	root := x.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", documentPath)
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return fmt.Errorf("%s has no w:body element", documentPath)
	}
	d.xml = x
	d.body = body
	return nil
}

// DocumentXML serializes the current document body part. Useful for
// comparing formatting passes.
func (d *Document) DocumentXML() ([]byte, error) {
	return d.xml.WriteToBytes()
}

// PartNames returns the archive entry names in original order.
func (d *Document) PartNames() []string {
	names := make([]string, len(d.parts))
	for i, p := range d.parts {
		names[i] = p.name
	}
	return names
}

// Part returns the stored bytes of an archive entry, or nil if absent.
// The document part reflects the bytes as loaded, not pending mutations.
func (d *Document) Part(name string) []byte {
	for _, p := range d.parts {
		if p.name == name {
			return p.data
		}
	}
	return nil
}

// Bytes assembles the archive with the mutated document part and returns it.
func (d *Document) Bytes() ([]byte, error) {
	docXML, err := d.xml.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", documentPath, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range d.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", p.name, err)
		}
		content := p.data
		if p.name == documentPath {
			content = docXML
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the document to path in a single step, after all mutations.
// Write failures surface as *SaveError; nothing is persisted mid-pass.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// AddParagraph appends an empty paragraph to the document body, before the
// trailing section properties if present.
func (d *Document) AddParagraph() *Paragraph {
	el := etree.NewElement("w:p")
	if sect := d.body.SelectElement("w:sectPr"); sect != nil {
		d.body.InsertChildAt(sect.Index(), el)
	} else {
		d.body.AddChild(el)
	}
	return &Paragraph{el: el}
}
