// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold builds a new manuscript skeleton from a resolved style
// profile: title, author and affiliation placeholders, then one heading
// and placeholder paragraph per template section.
package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperkit/internal/docx"
	"github.com/pdiddy/paperkit/internal/style"
	"github.com/pdiddy/paperkit/pkg/types"
)

const black = "000000"

const (
	authorPlaceholder = "Author Name¹, Second Author², Third Author¹"

	affiliationPlaceholder = "¹ School of Environmental Sciences, University of East Anglia, Norwich, UK\n" +
		"² Department, Institution, City, Country"
)

// sectionPlaceholder picks the stand-in body text for a section heading.
func sectionPlaceholder(name string) string {
	lower := strings.ToLower(name)
	switch {
	case lower == "abstract":
		return "[Write your abstract here. Typically 150-250 words.]"
	case strings.Contains(lower, "introduction"):
		return "[Introduce the research question and background.]"
	case strings.Contains(lower, "method"):
		return "[Describe your methodology.]"
	case strings.Contains(lower, "result"):
		return "[Present your findings.]"
	case strings.Contains(lower, "discussion"):
		return "[Interpret results and discuss implications.]"
	case strings.Contains(lower, "conclusion"):
		return "[Summarize main findings.]"
	case strings.Contains(lower, "reference"):
		return "[References will be added here.]"
	case strings.Contains(lower, "competing"), strings.Contains(lower, "conflict"):
		return "The authors declare no competing interests."
	default:
		return fmt.Sprintf("[Content for %s section.]", name)
	}
}

// Build creates a new manuscript for the profile, reporting progress to w.
// The caller saves the returned document.
func Build(title string, p types.Profile, w io.Writer) (*docx.Document, error) {
	d, err := docx.New(p.Language)
	if err != nil {
		return nil, err
	}

	dims := style.PaperSizeOrDefault(p.PaperSize)
	d.SetPageGeometry(dims.WidthIn, dims.HeightIn, p.Margins)

	normalize := func(r *docx.Run, sizePt int) {
		r.SetFont(p.Font)
		r.SetSizePt(sizePt)
		r.SetColor(black)
	}

	titlePara := d.AddParagraph()
	titlePara.SetStyle("Title")
	titleRun := titlePara.AddRun(title)
	normalize(titleRun, p.TitleSize)
	titleRun.SetBold(true)
	titleRun.SetUnderline("none")
	titlePara.SetLineSpacing(p.LineSpacing)

	authorPara := d.AddParagraph()
	normalize(authorPara.AddRun(authorPlaceholder), p.FontSize)
	authorPara.SetLineSpacing(p.LineSpacing)

	d.AddParagraph()

	affilPara := d.AddParagraph()
	normalize(affilPara.AddRun(affiliationPlaceholder), p.FontSize-1)
	affilPara.SetLineSpacing(p.LineSpacing)

	d.AddParagraph()

	for _, name := range p.Sections {
		heading := d.AddParagraph()
		heading.SetStyle("Heading1")
		run := heading.AddRun(name)
		normalize(run, p.Heading1Size)
		run.SetBold(true)

		body := d.AddParagraph()
		normalize(body.AddRun(sectionPlaceholder(name)), p.FontSize)
		body.SetLineSpacing(p.LineSpacing)
	}

	fmt.Fprintf(w, "title: %s\n", title)
	fmt.Fprintf(w, "sections:\n")
	for _, name := range p.Sections {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "font: %s %dpt, line spacing %.2g, margins %.2g in\n",
		p.Font, p.FontSize, p.LineSpacing, p.Margins)

	return d, nil
}
