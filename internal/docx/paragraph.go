// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Alignment values for Paragraph.SetAlignment.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Paragraph is a view over one w:p element.
type Paragraph struct {
	el   *etree.Element
	role Role
}

// Role returns the structural classification assigned by the walker.
// Paragraphs obtained outside a walk default to Body.
func (p *Paragraph) Role() Role { return p.role }

// StyleID returns the paragraph's style tag (w:pStyle), or "" when unset.
func (p *Paragraph) StyleID() string {
	pPr := p.el.SelectElement("w:pPr")
	if pPr == nil {
		return ""
	}
	style := pPr.SelectElement("w:pStyle")
	if style == nil {
		return ""
	}
	return style.SelectAttrValue("w:val", "")
}

// SetStyle sets the paragraph style tag.
func (p *Paragraph) SetStyle(id string) {
	pPr := ensureFirst(p.el, "w:pPr")
	style := ensureOrdered(pPr, "w:pStyle", pPrOrder)
	style.CreateAttr("w:val", id)
}

// Runs returns the paragraph's direct text runs in document order.
func (p *Paragraph) Runs() []*Run {
	els := p.el.SelectElements("w:r")
	runs := make([]*Run, len(els))
	for i, el := range els {
		runs[i] = &Run{el: el}
	}
	return runs
}

// Text returns the concatenated run text. Line breaks map to "\n" and
// tabs to "\t", matching what AddRun writes back.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// ClearRuns removes every run from the paragraph. Non-run content
// (bookmarks, field markers) is left in place.
func (p *Paragraph) ClearRuns() {
	removeChildren(p.el, "w:r")
}

// AddRun appends a run containing text. Newlines become explicit line
// breaks and tabs become tab marks, so Text round-trips.
func (p *Paragraph) AddRun(text string) *Run {
	el := p.el.CreateElement("w:r")
	r := &Run{el: el}
	r.setText(text)
	return r
}

// SetAlignment sets the paragraph justification (w:jc).
func (p *Paragraph) SetAlignment(val string) {
	pPr := ensureFirst(p.el, "w:pPr")
	jc := ensureOrdered(pPr, "w:jc", pPrOrder)
	jc.CreateAttr("w:val", val)
}

// SetLineSpacing sets the line spacing multiple (1.0 = single).
func (p *Paragraph) SetLineSpacing(mult float64) {
	sp := p.ensureSpacing()
	sp.CreateAttr("w:line", strconv.Itoa(int(mult*240+0.5)))
	sp.CreateAttr("w:lineRule", "auto")
}

// SetSpacing sets the space before and after the paragraph, in points.
func (p *Paragraph) SetSpacing(beforePt, afterPt int) {
	sp := p.ensureSpacing()
	sp.CreateAttr("w:before", strconv.Itoa(beforePt*20))
	sp.CreateAttr("w:after", strconv.Itoa(afterPt*20))
}

func (p *Paragraph) ensureSpacing() *etree.Element {
	pPr := ensureFirst(p.el, "w:pPr")
	return ensureOrdered(pPr, "w:spacing", pPrOrder)
}

// Alignment returns the paragraph justification, or "" when unset.
func (p *Paragraph) Alignment() string {
	pPr := p.el.SelectElement("w:pPr")
	if pPr == nil {
		return ""
	}
	jc := pPr.SelectElement("w:jc")
	if jc == nil {
		return ""
	}
	return jc.SelectAttrValue("w:val", "")
}

// LineSpacing returns the line spacing multiple, or 0 when unset.
func (p *Paragraph) LineSpacing() float64 {
	sp := p.spacing()
	if sp == nil {
		return 0
	}
	line, err := strconv.Atoi(sp.SelectAttrValue("w:line", ""))
	if err != nil {
		return 0
	}
	return float64(line) / 240
}

// SpacingPt returns the space before and after the paragraph in points,
// or zeros when unset.
func (p *Paragraph) SpacingPt() (beforePt, afterPt int) {
	sp := p.spacing()
	if sp == nil {
		return 0, 0
	}
	before, _ := strconv.Atoi(sp.SelectAttrValue("w:before", "0"))
	after, _ := strconv.Atoi(sp.SelectAttrValue("w:after", "0"))
	return before / 20, after / 20
}

func (p *Paragraph) spacing() *etree.Element {
	pPr := p.el.SelectElement("w:pPr")
	if pPr == nil {
		return nil
	}
	return pPr.SelectElement("w:spacing")
}

// Run is a view over one w:r element.
type Run struct {
	el *etree.Element
}

// Text returns the run's text with breaks as "\n" and tabs as "\t".
func (r *Run) Text() string {
	var b strings.Builder
	for _, child := range r.el.ChildElements() {
		if child.Space != "w" {
			continue
		}
		switch child.Tag {
		case "t":
			b.WriteString(child.Text())
		case "br":
			b.WriteString("\n")
		case "tab":
			b.WriteString("\t")
		}
	}
	return b.String()
}

// setText replaces the run content, translating "\n" and "\t" into break
// and tab marks.
func (r *Run) setText(text string) {
	for _, child := range r.el.SelectElements("w:t") {
		r.el.RemoveChild(child)
	}
	removeChildren(r.el, "w:br")
	removeChildren(r.el, "w:tab")

	segment := func(s string) {
		if s == "" {
			return
		}
		t := r.el.CreateElement("w:t")
		if s != strings.TrimSpace(s) {
			t.CreateAttr("xml:space", "preserve")
		}
		t.SetText(s)
	}

	rest := text
	for {
		i := strings.IndexAny(rest, "\n\t")
		if i < 0 {
			segment(rest)
			return
		}
		segment(rest[:i])
		switch rest[i] {
		case '\n':
			r.el.CreateElement("w:br")
		case '\t':
			r.el.CreateElement("w:tab")
		}
		rest = rest[i+1:]
	}
}

// SetFont forces the run font family for both latin and high-ANSI ranges.
func (r *Run) SetFont(name string) {
	rPr := ensureFirst(r.el, "w:rPr")
	fonts := ensureOrdered(rPr, "w:rFonts", rPrOrder)
	fonts.CreateAttr("w:ascii", name)
	fonts.CreateAttr("w:hAnsi", name)
	fonts.CreateAttr("w:cs", name)
	fonts.RemoveAttr("w:asciiTheme")
	fonts.RemoveAttr("w:hAnsiTheme")
	fonts.RemoveAttr("w:cstheme")
}

// SetSizePt forces the run size, in points.
func (r *Run) SetSizePt(pt int) {
	rPr := ensureFirst(r.el, "w:rPr")
	val := strconv.Itoa(pt * 2)
	ensureOrdered(rPr, "w:sz", rPrOrder).CreateAttr("w:val", val)
	ensureOrdered(rPr, "w:szCs", rPrOrder).CreateAttr("w:val", val)
}

// SetColor forces the run color to the given RGB hex value, dropping any
// theme color so no residual colored text survives.
func (r *Run) SetColor(hex string) {
	rPr := ensureFirst(r.el, "w:rPr")
	color := ensureOrdered(rPr, "w:color", rPrOrder)
	color.CreateAttr("w:val", hex)
	color.RemoveAttr("w:themeColor")
	color.RemoveAttr("w:themeShade")
	color.RemoveAttr("w:themeTint")
}

// SetBold turns bold on or off.
func (r *Run) SetBold(bold bool) {
	r.setToggle("w:b", bold)
}

// SetItalic turns italic on or off.
func (r *Run) SetItalic(italic bool) {
	r.setToggle("w:i", italic)
}

func (r *Run) setToggle(tag string, on bool) {
	rPr := ensureFirst(r.el, "w:rPr")
	if !on {
		removeChildren(rPr, tag)
		return
	}
	el := ensureOrdered(rPr, tag, rPrOrder)
	el.RemoveAttr("w:val")
}

// Bold reports whether the run is bold.
func (r *Run) Bold() bool { return r.toggle("w:b") }

// Italic reports whether the run is italic.
func (r *Run) Italic() bool { return r.toggle("w:i") }

func (r *Run) toggle(tag string) bool {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return false
	}
	el := rPr.SelectElement(tag)
	if el == nil {
		return false
	}
	switch el.SelectAttrValue("w:val", "") {
	case "0", "false", "none":
		return false
	}
	return true
}

// SetUnderline sets the underline style; "none" removes underlining.
func (r *Run) SetUnderline(val string) {
	rPr := ensureFirst(r.el, "w:rPr")
	u := ensureOrdered(rPr, "w:u", rPrOrder)
	u.CreateAttr("w:val", val)
}

// Font returns the run's latin font name, or "" when unset.
func (r *Run) Font() string {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return ""
	}
	fonts := rPr.SelectElement("w:rFonts")
	if fonts == nil {
		return ""
	}
	return fonts.SelectAttrValue("w:ascii", "")
}

// SizePt returns the run size in points, or 0 when unset.
func (r *Run) SizePt() int {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return 0
	}
	sz := rPr.SelectElement("w:sz")
	if sz == nil {
		return 0
	}
	half, err := strconv.Atoi(sz.SelectAttrValue("w:val", ""))
	if err != nil {
		return 0
	}
	return half / 2
}

// Color returns the run's RGB hex color, or "" when unset.
func (r *Run) Color() string {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return ""
	}
	color := rPr.SelectElement("w:color")
	if color == nil {
		return ""
	}
	return color.SelectAttrValue("w:val", "")
}
