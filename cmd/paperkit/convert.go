// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperkit/internal/convert"
	"github.com/pdiddy/paperkit/internal/csl"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a LaTeX, Markdown, or Word manuscript to styled Word",
	Long: `Convert turns a manuscript into a styled Word document. LaTeX and
Markdown inputs go through pandoc first; Word inputs are restyled
directly. A library.bib next to the input is picked up automatically and
enables citation processing with the template's CSL style.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addStyleFlags(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "output file path (default: input with .docx suffix)")
	convertCmd.Flags().String("bibliography", "", "BibTeX file for citation processing")
	convertCmd.Flags().String("pandoc", "", "pandoc binary to invoke (default: pandoc from PATH)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	p, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	output, _ := cmd.Flags().GetString("output")

	// Configured settings, overridden per invocation by flags.
	cfg := cliConfig.Convert
	if bibliography, _ := cmd.Flags().GetString("bibliography"); bibliography != "" {
		cfg.Bibliography = bibliography
	}
	if pandocBin, _ := cmd.Flags().GetString("pandoc"); pandocBin != "" {
		cfg.PandocPath = pandocBin
	}
	if cfg.Bibliography == "" {
		// A library.bib sitting next to the input enables citations.
		candidate := filepath.Join(filepath.Dir(input), "library.bib")
		if _, err := os.Stat(candidate); err == nil {
			fmt.Fprintf(os.Stderr, "Using bibliography %s\n", candidate)
			cfg.Bibliography = candidate
		}
	}

	cslStyle := p.CSLStyle
	if cfg.Bibliography != "" && cslStyle != "" {
		fetcher := &csl.Fetcher{CacheDir: styleCacheDir(cfg.CacheDir), Out: os.Stderr}
		cslStyle = fetcher.Resolve(cmd.Context(), cslStyle)
	}

	pl := convert.NewPipeline(cfg, cslStyle, os.Stderr)

	res, err := pl.ConvertFile(cmd.Context(), input, output, p)
	if err != nil {
		return err
	}

	if output == "" {
		output = input[:len(input)-len(filepath.Ext(input))] + ".docx"
	}
	fmt.Printf("Converted %s: %d paragraphs, %d tables\n", output, res.Paragraphs, res.Tables)
	return nil
}

// styleCacheDir picks the CSL cache directory: the configured one, or a
// paperkit subdirectory of the user cache. Empty disables caching.
func styleCacheDir(configured string) string {
	if configured != "" {
		return configured
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cache, "paperkit", "csl")
}
