// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperkit/pkg/types"
)

// LoadTemplates reads user-defined journal templates from a YAML file and
// registers them, replacing builtins of the same name. The file maps
// template names to profiles:
//
//	my-journal:
//	  name: My Journal
//	  font: Georgia
//	  font_size: 11
//	  line_spacing: 1.5
//	  sections: [Abstract, Introduction, References]
//
// Fields omitted for a template are filled from the base defaults so that
// a partial custom template still resolves to a complete profile.
func LoadTemplates(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading templates file: %w", err)
	}

	var raw map[string]types.Profile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing templates file %s: %w", path, err)
	}

	for name, p := range raw {
		r.Add(name, fillDefaults(p))
	}
	return nil
}

// fillDefaults completes a partial profile from the base defaults.
func fillDefaults(p types.Profile) types.Profile {
	d := Default()
	if p.Name == "" {
		p.Name = d.Name
	}
	if p.Font == "" {
		p.Font = d.Font
	}
	if p.FontSize == 0 {
		p.FontSize = d.FontSize
	}
	if p.TitleSize == 0 {
		p.TitleSize = d.TitleSize
	}
	if p.Heading1Size == 0 {
		p.Heading1Size = d.Heading1Size
	}
	if p.Heading2Size == 0 {
		p.Heading2Size = d.Heading2Size
	}
	if p.Heading3Size == 0 {
		p.Heading3Size = d.Heading3Size
	}
	if p.LineSpacing == 0 {
		p.LineSpacing = d.LineSpacing
	}
	if p.Margins == 0 {
		p.Margins = d.Margins
	}
	if p.Language == "" {
		p.Language = d.Language
	}
	if p.PaperSize == "" {
		p.PaperSize = d.PaperSize
	}
	if p.CSLStyle == "" {
		p.CSLStyle = d.CSLStyle
	}
	if p.CitationType == "" {
		p.CitationType = d.CitationType
	}
	if p.Sections == nil {
		p.Sections = d.Sections
	}
	return p
}
