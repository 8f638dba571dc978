// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "github.com/beevik/etree"

// Child ordering per the WordprocessingML schema, for the property
// containers this package writes into. Only the elements we touch are
// listed; unknown siblings keep their positions and ordered inserts land
// before them.
var (
	pPrOrder    = []string{"w:pStyle", "w:spacing", "w:jc"}
	rPrOrder    = []string{"w:rStyle", "w:rFonts", "w:b", "w:i", "w:color", "w:sz", "w:szCs", "w:u", "w:vertAlign"}
	tblPrOrder  = []string{"w:tblStyle", "w:tblW", "w:jc", "w:tblInd", "w:tblBorders", "w:tblLayout", "w:tblCellMar", "w:tblLook"}
	tcPrOrder   = []string{"w:tcW", "w:gridSpan", "w:vMerge", "w:tcBorders", "w:shd", "w:vAlign"}
	sectPrOrder = []string{"w:type", "w:pgSz", "w:pgMar", "w:cols", "w:docGrid"}
)

func fullTag(e *etree.Element) string {
	if e.Space == "" {
		return e.Tag
	}
	return e.Space + ":" + e.Tag
}

func orderRank(order []string, tag string) int {
	for i, t := range order {
		if t == tag {
			return i
		}
	}
	return len(order)
}

// ensureFirst returns parent's child with the given tag, creating it as the
// first child when absent. Property containers (pPr, rPr, tblPr, tcPr) must
// lead their parent element.
func ensureFirst(parent *etree.Element, tag string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	el := etree.NewElement(tag)
	parent.InsertChildAt(0, el)
	return el
}

// ensureOrdered returns parent's child with the given tag, creating it at
// its schema position when absent.
func ensureOrdered(parent *etree.Element, tag string, order []string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	el := etree.NewElement(tag)
	rank := orderRank(order, tag)
	for _, child := range parent.ChildElements() {
		if orderRank(order, fullTag(child)) > rank {
			parent.InsertChildAt(child.Index(), el)
			return el
		}
	}
	parent.AddChild(el)
	return el
}

// removeChildren drops all children of parent with the given tag.
func removeChildren(parent *etree.Element, tag string) {
	for {
		el := parent.SelectElement(tag)
		if el == nil {
			return
		}
		parent.RemoveChild(el)
	}
}
