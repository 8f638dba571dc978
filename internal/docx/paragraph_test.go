// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "testing"

func openBody(t *testing.T, inner string) *Document {
	t.Helper()
	d, err := OpenBytes(buildArchive(t, wrapBody(inner), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func firstParagraph(t *testing.T, d *Document) *Paragraph {
	t.Helper()
	for _, n := range d.Nodes() {
		if n.Paragraph != nil {
			return n.Paragraph
		}
	}
	t.Fatal("no paragraph in document")
	return nil
}

func TestParagraphTextMapsBreaksAndTabs(t *testing.T) {
	d := openBody(t, `<w:p><w:r><w:t>Table 1</w:t><w:br/><w:t>Counts</w:t></w:r>`+
		`<w:r><w:tab/><w:t>end</w:t></w:r></w:p>`)
	p := firstParagraph(t, d)
	if got, want := p.Text(), "Table 1\nCounts\tend"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestAddRunRoundTripsBreaks(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	p := d.AddParagraph()
	p.AddRun("Table 2\nResults by Region")

	if got, want := p.Text(), "Table 2\nResults by Region"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	// The newline must be a real break element, not a literal newline in
	// the text node.
	r := p.Runs()[0]
	if br := r.el.SelectElement("w:br"); br == nil {
		t.Error("no w:br element written for newline")
	}
	for _, tEl := range r.el.SelectElements("w:t") {
		if tEl.Text() == "\n" {
			t.Error("newline written as text content")
		}
	}
}

func TestClearRuns(t *testing.T) {
	d := openBody(t, `<w:p><w:pPr><w:pStyle w:val="Caption"/></w:pPr>`+
		`<w:r><w:t>one</w:t></w:r><w:r><w:t>two</w:t></w:r></w:p>`)
	p := firstParagraph(t, d)
	p.ClearRuns()
	if len(p.Runs()) != 0 {
		t.Errorf("runs remain after ClearRuns: %d", len(p.Runs()))
	}
	// Properties survive.
	if p.StyleID() != "Caption" {
		t.Errorf("StyleID = %q after ClearRuns", p.StyleID())
	}
}

func TestRunNormalization(t *testing.T) {
	d := openBody(t, `<w:p><w:r><w:rPr><w:color w:val="FF0000" w:themeColor="accent1"/></w:rPr>`+
		`<w:t>colored</w:t></w:r></w:p>`)
	r := firstParagraph(t, d).Runs()[0]

	r.SetFont("Times New Roman")
	r.SetSizePt(12)
	r.SetColor("000000")

	if got := r.Font(); got != "Times New Roman" {
		t.Errorf("Font = %q", got)
	}
	if got := r.SizePt(); got != 12 {
		t.Errorf("SizePt = %d", got)
	}
	if got := r.Color(); got != "000000" {
		t.Errorf("Color = %q", got)
	}

	// Theme color attributes must not survive normalization.
	color := r.el.SelectElement("w:rPr").SelectElement("w:color")
	if color.SelectAttr("w:themeColor") != nil {
		t.Error("themeColor attribute survived SetColor")
	}
}

func TestRunPropertyOrder(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	r := d.AddParagraph().AddRun("x")

	// Set properties in reverse schema order; the rPr children must still
	// come out in schema order.
	r.SetSizePt(14)
	r.SetColor("000000")
	r.SetItalic(true)
	r.SetBold(true)
	r.SetFont("Arial")

	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		t.Fatal("no rPr")
	}
	// rPr must precede the text content.
	if r.el.ChildElements()[0] != rPr {
		t.Error("rPr is not the first child of the run")
	}

	var tags []string
	for _, c := range rPr.ChildElements() {
		tags = append(tags, c.Tag)
	}
	want := []string{"rFonts", "b", "i", "color", "sz", "szCs"}
	if len(tags) != len(want) {
		t.Fatalf("rPr children = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("rPr children = %v, want %v", tags, want)
		}
	}
}

func TestBoldItalicToggles(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	r := d.AddParagraph().AddRun("x")

	if r.Bold() || r.Italic() {
		t.Error("new run reports bold/italic")
	}
	r.SetBold(true)
	r.SetItalic(true)
	if !r.Bold() || !r.Italic() {
		t.Error("toggles not set")
	}
	r.SetBold(false)
	if r.Bold() {
		t.Error("bold survived SetBold(false)")
	}
}

func TestParagraphSpacingAndAlignment(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	p := d.AddParagraph()
	p.AddRun("x")
	p.SetAlignment(AlignLeft)
	p.SetLineSpacing(1.5)
	p.SetSpacing(0, 6)

	pPr := p.el.SelectElement("w:pPr")
	if pPr == nil {
		t.Fatal("no pPr")
	}
	if p.el.ChildElements()[0] != pPr {
		t.Error("pPr is not the first child of the paragraph")
	}

	sp := pPr.SelectElement("w:spacing")
	if sp == nil {
		t.Fatal("no spacing element")
	}
	if got := sp.SelectAttrValue("w:line", ""); got != "360" {
		t.Errorf("w:line = %q, want 360", got)
	}
	if got := sp.SelectAttrValue("w:lineRule", ""); got != "auto" {
		t.Errorf("w:lineRule = %q, want auto", got)
	}
	if got := sp.SelectAttrValue("w:before", ""); got != "0" {
		t.Errorf("w:before = %q, want 0", got)
	}
	if got := sp.SelectAttrValue("w:after", ""); got != "120" {
		t.Errorf("w:after = %q, want 120", got)
	}

	jc := pPr.SelectElement("w:jc")
	if jc == nil {
		t.Fatal("no jc element")
	}
	if got := jc.SelectAttrValue("w:val", ""); got != "left" {
		t.Errorf("w:jc = %q, want left", got)
	}

	// spacing must precede jc per the schema.
	children := pPr.ChildElements()
	spIdx, jcIdx := -1, -1
	for i, c := range children {
		switch c.Tag {
		case "spacing":
			spIdx = i
		case "jc":
			jcIdx = i
		}
	}
	if spIdx > jcIdx {
		t.Error("w:spacing serialized after w:jc")
	}
}

func TestSetStyle(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	p := d.AddParagraph()
	p.SetStyle("Heading1")
	if got := p.StyleID(); got != "Heading1" {
		t.Errorf("StyleID = %q", got)
	}
}
