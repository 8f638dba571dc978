// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data types used across paperkit stages.
package types

// Profile is the resolved set of visual and layout settings for one
// document. A Profile is produced by merging the base defaults with an
// optional journal template and optional explicit overrides; once
// resolved it is treated as immutable.
type Profile struct {
	// Name is the human-readable template name
	// (e.g. "American Geophysical Union (AGU)").
	Name string `json:"name" yaml:"name"`

	// Font is the font family applied to every run.
	Font string `json:"font" yaml:"font"`

	// FontSize is the body text size in points.
	FontSize int `json:"font_size" yaml:"font_size"`

	// TitleSize is the title paragraph size in points.
	TitleSize int `json:"title_size" yaml:"title_size"`

	// Heading1Size, Heading2Size and Heading3Size are the heading sizes
	// in points.
	Heading1Size int `json:"heading1_size" yaml:"heading1_size"`
	Heading2Size int `json:"heading2_size" yaml:"heading2_size"`
	Heading3Size int `json:"heading3_size" yaml:"heading3_size"`

	// LineSpacing is the line spacing multiple (1.5, 2.0, ...).
	LineSpacing float64 `json:"line_spacing" yaml:"line_spacing"`

	// Margins is the page margin on all four sides, in inches.
	Margins float64 `json:"margins" yaml:"margins"`

	// Language is the document language tag (e.g. "en-GB").
	Language string `json:"language" yaml:"language"`

	// PaperSize is a named paper size: a4, letter, legal, a5 or b5.
	// Unknown names fall back to A4 at apply time.
	PaperSize string `json:"paper_size" yaml:"paper_size"`

	// CSLStyle is the citation style sheet URL handed to the external
	// converter for bibliography processing.
	CSLStyle string `json:"csl_style" yaml:"csl_style"`

	// CitationType describes the citation scheme ("author-year" or
	// "numbered"). Informational only; citation rendering is delegated
	// to the external converter.
	CitationType string `json:"citation_type" yaml:"citation_type"`

	// Sections is the ordered list of section headings a new manuscript
	// is scaffolded with.
	Sections []string `json:"sections" yaml:"sections"`
}

// HeadingSize returns the size in points for heading level 1-3. Levels
// outside that range return the body font size.
func (p Profile) HeadingSize(level int) int {
	switch level {
	case 1:
		return p.Heading1Size
	case 2:
		return p.Heading2Size
	case 3:
		return p.Heading3Size
	}
	return p.FontSize
}

// Overrides holds explicit per-invocation settings that win over both the
// template and the defaults. Zero values mean "not set"; an override of 0
// is never meaningful for any field here.
type Overrides struct {
	Font         string
	FontSize     int
	TitleSize    int
	Heading1Size int
	Heading2Size int
	Heading3Size int
	LineSpacing  float64
	Margins      float64
	Language     string
	PaperSize    string
	CSLStyle     string
	Sections     []string
}

// Apply returns a copy of p with every set override field replaced.
// Replacement is whole-value: a Sections override discards the template's
// section list entirely.
func (o Overrides) Apply(p Profile) Profile {
	if o.Font != "" {
		p.Font = o.Font
	}
	if o.FontSize != 0 {
		p.FontSize = o.FontSize
	}
	if o.TitleSize != 0 {
		p.TitleSize = o.TitleSize
	}
	if o.Heading1Size != 0 {
		p.Heading1Size = o.Heading1Size
	}
	if o.Heading2Size != 0 {
		p.Heading2Size = o.Heading2Size
	}
	if o.Heading3Size != 0 {
		p.Heading3Size = o.Heading3Size
	}
	if o.LineSpacing != 0 {
		p.LineSpacing = o.LineSpacing
	}
	if o.Margins != 0 {
		p.Margins = o.Margins
	}
	if o.Language != "" {
		p.Language = o.Language
	}
	if o.PaperSize != "" {
		p.PaperSize = o.PaperSize
	}
	if o.CSLStyle != "" {
		p.CSLStyle = o.CSLStyle
	}
	if o.Sections != nil {
		p.Sections = o.Sections
	}
	return p
}
