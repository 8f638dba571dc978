// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// Border edges, in schema order.
const (
	EdgeTop     = "top"
	EdgeLeft    = "left"
	EdgeBottom  = "bottom"
	EdgeRight   = "right"
	EdgeInsideH = "insideH"
	EdgeInsideV = "insideV"
)

var borderEdges = []string{EdgeTop, EdgeLeft, EdgeBottom, EdgeRight, EdgeInsideH, EdgeInsideV}

// Table is a view over one w:tbl element.
type Table struct {
	el      *etree.Element
	caption *Paragraph
}

// Caption returns the caption paragraph preceding the table, or nil when
// the walker found none.
func (t *Table) Caption() *Paragraph { return t.caption }

// Rows returns the table rows in document order.
func (t *Table) Rows() []*Row {
	els := t.el.SelectElements("w:tr")
	rows := make([]*Row, len(els))
	for i, el := range els {
		rows[i] = &Row{el: el}
	}
	return rows
}

// ClearBorders resets the table-level borders: any existing border set is
// replaced with an explicit none on all six edges. Rebuilding from scratch
// keeps repeated formatting passes byte-identical.
func (t *Table) ClearBorders() {
	tblPr := ensureFirst(t.el, "w:tblPr")
	removeChildren(tblPr, "w:tblBorders")
	borders := ensureOrdered(tblPr, "w:tblBorders", tblPrOrder)
	for _, edge := range borderEdges {
		el := borders.CreateElement("w:" + edge)
		el.CreateAttr("w:val", "none")
		el.CreateAttr("w:sz", "0")
		el.CreateAttr("w:color", "auto")
	}
}

// Row is a view over one w:tr element.
type Row struct {
	el *etree.Element
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []*Cell {
	els := r.el.SelectElements("w:tc")
	cells := make([]*Cell, len(els))
	for i, el := range els {
		cells[i] = &Cell{el: el}
	}
	return cells
}

// Cell is a view over one w:tc element.
type Cell struct {
	el *etree.Element
}

// Paragraphs returns the cell's paragraphs.
func (c *Cell) Paragraphs() []*Paragraph {
	els := c.el.SelectElements("w:p")
	paras := make([]*Paragraph, len(els))
	for i, el := range els {
		paras[i] = &Paragraph{el: el}
	}
	return paras
}

// ClearBorders replaces the cell border set with an explicit none on all
// six edges.
func (c *Cell) ClearBorders() {
	tcPr := ensureFirst(c.el, "w:tcPr")
	removeChildren(tcPr, "w:tcBorders")
	borders := ensureOrdered(tcPr, "w:tcBorders", tcPrOrder)
	for _, edge := range borderEdges {
		el := borders.CreateElement("w:" + edge)
		el.CreateAttr("w:val", "none")
		el.CreateAttr("w:sz", "0")
	}
}

// SetBorder sets one cell edge to a single line of the given weight
// (eighths of a point) and RGB hex color.
func (c *Cell) SetBorder(edge string, sz int, color string) {
	tcPr := ensureFirst(c.el, "w:tcPr")
	borders := ensureOrdered(tcPr, "w:tcBorders", tcPrOrder)
	el := borders.SelectElement("w:" + edge)
	if el == nil {
		el = borders.CreateElement("w:" + edge)
	}
	el.CreateAttr("w:val", "single")
	el.CreateAttr("w:sz", strconv.Itoa(sz))
	el.CreateAttr("w:color", color)
}

// Border returns the (val, sz, color) attributes of one cell edge, or
// zero values when the edge is not set.
func (c *Cell) Border(edge string) (val, sz, color string) {
	tcPr := c.el.SelectElement("w:tcPr")
	if tcPr == nil {
		return "", "", ""
	}
	borders := tcPr.SelectElement("w:tcBorders")
	if borders == nil {
		return "", "", ""
	}
	el := borders.SelectElement("w:" + edge)
	if el == nil {
		return "", "", ""
	}
	return el.SelectAttrValue("w:val", ""),
		el.SelectAttrValue("w:sz", ""),
		el.SelectAttrValue("w:color", "")
}
