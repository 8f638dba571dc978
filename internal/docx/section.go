// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "strconv"

// twips converts inches to twentieths of a point.
func twips(in float64) int {
	return int(in*1440 + 0.5)
}

// SetPageGeometry sets the page size and margins (all four sides) on every
// section of the document, in inches.
func (d *Document) SetPageGeometry(widthIn, heightIn, marginIn float64) {
	for _, sectPr := range d.xml.FindElements("//w:sectPr") {
		pgSz := ensureOrdered(sectPr, "w:pgSz", sectPrOrder)
		pgSz.CreateAttr("w:w", strconv.Itoa(twips(widthIn)))
		pgSz.CreateAttr("w:h", strconv.Itoa(twips(heightIn)))

		margin := strconv.Itoa(twips(marginIn))
		pgMar := sectPr.SelectElement("w:pgMar")
		if pgMar == nil {
			pgMar = ensureOrdered(sectPr, "w:pgMar", sectPrOrder)
			pgMar.CreateAttr("w:top", margin)
			pgMar.CreateAttr("w:right", margin)
			pgMar.CreateAttr("w:bottom", margin)
			pgMar.CreateAttr("w:left", margin)
			pgMar.CreateAttr("w:header", "720")
			pgMar.CreateAttr("w:footer", "720")
			pgMar.CreateAttr("w:gutter", "0")
			continue
		}
		pgMar.CreateAttr("w:top", margin)
		pgMar.CreateAttr("w:right", margin)
		pgMar.CreateAttr("w:bottom", margin)
		pgMar.CreateAttr("w:left", margin)
	}
}

// PageSize returns the page width and height of the first section, in
// inches. Zero values mean no section or no size is present.
func (d *Document) PageSize() (widthIn, heightIn float64) {
	sectPr := d.xml.FindElement("//w:sectPr")
	if sectPr == nil {
		return 0, 0
	}
	pgSz := sectPr.SelectElement("w:pgSz")
	if pgSz == nil {
		return 0, 0
	}
	w, _ := strconv.Atoi(pgSz.SelectAttrValue("w:w", "0"))
	h, _ := strconv.Atoi(pgSz.SelectAttrValue("w:h", "0"))
	return float64(w) / 1440, float64(h) / 1440
}
