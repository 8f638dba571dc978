// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"math"
	"testing"
)

func TestSetPageGeometry(t *testing.T) {
	d, err := New("en-GB")
	if err != nil {
		t.Fatal(err)
	}
	d.SetPageGeometry(8.5, 11.0, 1.0)

	w, h := d.PageSize()
	if math.Abs(w-8.5) > 0.01 || math.Abs(h-11.0) > 0.01 {
		t.Errorf("page size = %v x %v, want 8.5 x 11.0", w, h)
	}

	sectPr := d.xml.FindElement("//w:sectPr")
	pgMar := sectPr.SelectElement("w:pgMar")
	if pgMar == nil {
		t.Fatal("no pgMar")
	}
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		if got := pgMar.SelectAttrValue(side, ""); got != "1440" {
			t.Errorf("%s = %q, want 1440", side, got)
		}
	}
}

func TestSetPageGeometryCreatesMissingElements(t *testing.T) {
	d := openBody(t, `<w:p/><w:sectPr/>`)
	d.SetPageGeometry(8.27, 11.69, 1.0)

	sectPr := d.xml.FindElement("//w:sectPr")
	pgSz := sectPr.SelectElement("w:pgSz")
	if pgSz == nil {
		t.Fatal("pgSz not created")
	}
	if got := pgSz.SelectAttrValue("w:w", ""); got != "11909" {
		t.Errorf("w:w = %q, want 11909", got)
	}
	if got := pgSz.SelectAttrValue("w:h", ""); got != "16834" {
		t.Errorf("w:h = %q, want 16834", got)
	}

	// pgSz must precede pgMar.
	children := sectPr.ChildElements()
	if len(children) < 2 || children[0].Tag != "pgSz" || children[1].Tag != "pgMar" {
		var tags []string
		for _, c := range children {
			tags = append(tags, c.Tag)
		}
		t.Errorf("sectPr children order wrong: %v", tags)
	}
}
