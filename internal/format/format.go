// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format applies a resolved style profile to a loaded document.
// One pass walks the body in order, normalizes every run to the profile's
// font, size and color, applies the role-specific rules, numbers and
// restyles table captions, and rewrites table borders in the 3-line
// convention (rule above the header, below the header, below the last
// row; nothing vertical or internal).
//
// The pass is idempotent: borders are rebuilt from scratch and caption
// numbering is recomputed from document order, so running it again over
// its own output changes nothing.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperkit/internal/docx"
	"github.com/pdiddy/paperkit/internal/style"
	"github.com/pdiddy/paperkit/pkg/types"
)

const (
	black = "000000"

	// borderSize is the 3-line rule weight in eighths of a point.
	borderSize = 6

	// Paragraph spacing is fixed, not profile-driven.
	bodySpaceBeforePt    = 0
	bodySpaceAfterPt     = 6
	captionSpaceBeforePt = 12
	captionSpaceAfterPt  = 0
)

// Result summarizes one formatting pass.
type Result struct {
	Paragraphs int
	Tables     int
}

// Apply formats the document in place according to the profile, reporting
// progress to w. Nothing is persisted; the caller saves afterwards.
func Apply(d *docx.Document, p types.Profile, w io.Writer) Result {
	dims := style.PaperSizeOrDefault(p.PaperSize)
	fmt.Fprintf(w, "page: %s (%.2f x %.2f in), margins %.2g in\n",
		strings.ToUpper(p.PaperSize), dims.WidthIn, dims.HeightIn, p.Margins)
	d.SetPageGeometry(dims.WidthIn, dims.HeightIn, p.Margins)

	fmt.Fprintf(w, "font: %s %dpt, line spacing %.2g\n", p.Font, p.FontSize, p.LineSpacing)

	var res Result
	tableNum := 0
	for _, node := range d.Nodes() {
		switch {
		case node.Paragraph != nil:
			formatParagraph(node.Paragraph, p)
			res.Paragraphs++
		case node.Table != nil:
			tableNum++
			if caption := node.Table.Caption(); caption != nil {
				formatCaption(caption, tableNum, p)
			}
			formatTable(node.Table, p)
			res.Tables++
		}
	}
	return res
}

// formatParagraph applies the role rules to one top-level paragraph.
// Every run is forced to the profile font and pure black; headings and the
// title additionally get their role size, bold and left alignment. Line
// spacing and the fixed before/after spacing apply to every role (caption
// spacing is overridden later in the table pass).
func formatParagraph(para *docx.Paragraph, p types.Profile) {
	size := p.FontSize
	bold := false

	switch para.Role() {
	case docx.RoleTitle:
		size = p.TitleSize
		bold = true
	case docx.RoleHeading1, docx.RoleHeading2, docx.RoleHeading3:
		size = p.HeadingSize(para.Role().HeadingLevel())
		bold = true
	}

	for _, run := range para.Runs() {
		run.SetFont(p.Font)
		run.SetSizePt(size)
		run.SetColor(black)
		if bold {
			run.SetBold(true)
		}
	}
	if bold {
		para.SetAlignment(docx.AlignLeft)
	}

	para.SetLineSpacing(p.LineSpacing)
	para.SetSpacing(bodySpaceBeforePt, bodySpaceAfterPt)
}

// formatCaption rewrites a table caption. Captions not yet labeled get a
// bold-italic "Table {n}" prefix on its own line, with the original text
// in italic below; captions that already start with "Table" are restyled
// italic without renumbering.
func formatCaption(para *docx.Paragraph, tableNum int, p types.Profile) {
	text := strings.TrimSpace(para.Text())
	para.ClearRuns()

	normalize := func(r *docx.Run) {
		r.SetFont(p.Font)
		r.SetSizePt(p.FontSize)
		r.SetColor(black)
	}

	if !strings.HasPrefix(strings.ToLower(text), "table") {
		label := para.AddRun(fmt.Sprintf("Table %d", tableNum))
		label.SetBold(true)
		label.SetItalic(true)
		normalize(label)

		br := para.AddRun("\n")
		normalize(br)

		title := para.AddRun(text)
		title.SetItalic(true)
		normalize(title)
	} else {
		title := para.AddRun(text)
		title.SetItalic(true)
		normalize(title)
	}

	para.SetAlignment(docx.AlignLeft)
	para.SetSpacing(captionSpaceBeforePt, captionSpaceAfterPt)
}

// formatTable rewrites a table in the 3-line border style and normalizes
// its cell text. The header row doubles as the last row in a one-row
// table, in which case it carries both the top and bottom rules.
func formatTable(tbl *docx.Table, p types.Profile) {
	tbl.ClearBorders()

	rows := tbl.Rows()
	for i, row := range rows {
		first := i == 0
		last := i == len(rows)-1

		for _, cell := range row.Cells() {
			for _, para := range cell.Paragraphs() {
				para.SetAlignment(docx.AlignLeft)
				for _, run := range para.Runs() {
					run.SetFont(p.Font)
					run.SetSizePt(p.FontSize)
					run.SetColor(black)
					if first {
						run.SetBold(true)
					}
				}
			}

			cell.ClearBorders()
			if first {
				cell.SetBorder(docx.EdgeTop, borderSize, black)
			}
			if first || last {
				cell.SetBorder(docx.EdgeBottom, borderSize, black)
			}
		}
	}
}
