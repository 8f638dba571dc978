// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/paperkit/pkg/types"
)

// addStyleFlags registers the style-override flags shared by the
// manuscript-producing subcommands.
func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "", "journal template: agu, nature, science, pnas, or default")
	cmd.Flags().String("font", "", "override the template font")
	cmd.Flags().Int("font-size", 0, "override the body text size in points")
	cmd.Flags().Float64("line-spacing", 0, "override the line spacing multiplier")
	cmd.Flags().String("paper-size", "", "override the paper size: a4, letter, legal, a5, or b5")
	cmd.Flags().Float64("margins", 0, "override the page margins in inches")
	cmd.Flags().String("language", "", "override the document language tag")
}

// resolveProfile builds the style profile for a command invocation:
// defaults, then the selected template, then any flag overrides. The
// template falls back to the configured default when no flag is given.
func resolveProfile(cmd *cobra.Command) (types.Profile, error) {
	template, _ := cmd.Flags().GetString("template")
	if template == "" {
		template = cliConfig.Template
	}

	var ov types.Overrides
	ov.Font, _ = cmd.Flags().GetString("font")
	ov.FontSize, _ = cmd.Flags().GetInt("font-size")
	ov.LineSpacing, _ = cmd.Flags().GetFloat64("line-spacing")
	ov.PaperSize, _ = cmd.Flags().GetString("paper-size")
	ov.Margins, _ = cmd.Flags().GetFloat64("margins")
	ov.Language, _ = cmd.Flags().GetString("language")

	return registry.Resolve(template, ov)
}
