// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperkit/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <title>",
	Short: "Create a new manuscript skeleton",
	Long: `Init creates a new Word manuscript with the title, author and affiliation
placeholders, and one heading per template section with placeholder text.
The template decides the section list and all styling.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	addStyleFlags(initCmd)
	initCmd.Flags().StringP("output", "o", "paper.docx", "output file path")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p, err := resolveProfile(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	d, err := scaffold.Build(args[0], p, os.Stderr)
	if err != nil {
		return err
	}
	if err := d.Save(output); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", output)
	return nil
}
