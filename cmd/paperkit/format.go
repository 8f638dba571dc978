// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperkit/internal/docx"
	"github.com/pdiddy/paperkit/internal/format"
)

var formatCmd = &cobra.Command{
	Use:   "format <file.docx>",
	Short: "Apply journal styling to an existing Word document",
	Long: `Format restyles a Word document in place: fonts, sizes, heading styles,
line spacing, page geometry, caption numbering, and three-line table
borders. Pass --output to write to a different file instead.

Running format again over its own output changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	addStyleFlags(formatCmd)
	formatCmd.Flags().StringP("output", "o", "", "output file path (default: overwrite the input)")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	p, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = input
	}

	d, err := docx.Open(input)
	if err != nil {
		return err
	}
	res := format.Apply(d, p, os.Stderr)
	if err := d.Save(output); err != nil {
		return err
	}

	fmt.Printf("Formatted %d paragraphs and %d tables -> %s\n", res.Paragraphs, res.Tables, output)
	return nil
}
