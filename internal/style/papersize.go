// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import "strings"

// PageDimensions is a paper size in inches.
type PageDimensions struct {
	WidthIn  float64
	HeightIn float64
}

// paperSizes maps the supported paper size names to their dimensions.
var paperSizes = map[string]PageDimensions{
	"a4":     {8.27, 11.69}, // 210mm x 297mm
	"letter": {8.5, 11.0},
	"legal":  {8.5, 14.0},
	"a5":     {5.83, 8.27}, // 148mm x 210mm
	"b5":     {6.93, 9.84}, // 176mm x 250mm
}

// A4 is the fallback page size for unrecognized names.
var A4 = paperSizes["a4"]

// LookupPaperSize returns the dimensions for a named paper size. The
// lookup is case-insensitive. ok is false when the name is unknown.
func LookupPaperSize(name string) (dims PageDimensions, ok bool) {
	dims, ok = paperSizes[strings.ToLower(name)]
	return dims, ok
}

// PaperSizeOrDefault resolves a paper size name, silently substituting A4
// for unrecognized names. A cosmetic mismatch is not worth failing over.
func PaperSizeOrDefault(name string) PageDimensions {
	if dims, ok := LookupPaperSize(name); ok {
		return dims
	}
	return A4
}
