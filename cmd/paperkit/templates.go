// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [name]",
	Short: "List journal templates or show one in detail",
	Long: `Templates lists the available journal templates. With a name argument it
prints that template's full profile; --yaml emits it as YAML suitable as a
starting point for a custom templates file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().Bool("yaml", false, "emit the template profile as YAML")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Available templates:")
		for _, name := range registry.Names() {
			p, err := registry.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("  %-10s %s %dpt, spacing %.2g, %s\n",
				name, p.Font, p.FontSize, p.LineSpacing, p.PaperSize)
		}
		return nil
	}

	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		out, err := yaml.Marshal(map[string]any{strings.ToLower(args[0]): p})
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		return nil
	}

	fmt.Printf("Template: %s\n", strings.ToLower(args[0]))
	fmt.Printf("  Font:         %s, %dpt\n", p.Font, p.FontSize)
	fmt.Printf("  Title:        %dpt\n", p.TitleSize)
	fmt.Printf("  Headings:     %d / %d / %d pt\n", p.Heading1Size, p.Heading2Size, p.Heading3Size)
	fmt.Printf("  Line spacing: %.2g\n", p.LineSpacing)
	fmt.Printf("  Paper:        %s, margins %.2g in\n", p.PaperSize, p.Margins)
	fmt.Printf("  Language:     %s\n", p.Language)
	if p.CSLStyle != "" {
		fmt.Printf("  CSL style:    %s\n", p.CSLStyle)
	}
	if len(p.Sections) > 0 {
		fmt.Printf("  Sections:     %s\n", strings.Join(p.Sections, ", "))
	}
	return nil
}
