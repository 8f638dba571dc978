// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperkit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperkit/internal/style"
	"github.com/pdiddy/paperkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// registry holds the journal templates, builtin plus any user-defined
// ones loaded at startup.
var registry = style.NewRegistry()

// cliConfig holds the settings read from paperkit.yaml and the PAPERKIT_*
// environment. Flags override it per invocation.
var cliConfig types.CLIConfig

// rootCmd is the base command for the paperkit CLI.
var rootCmd = &cobra.Command{
	Use:   "paperkit",
	Short: "Format academic manuscripts for journal submission",
	Long: `paperkit creates, converts, and formats academic Word manuscripts.
Journal templates (AGU, Nature, Science, PNAS) drive fonts, sizes, spacing,
page geometry, and section structure; LaTeX and Markdown sources are
converted through pandoc before styling.

Each operation is a subcommand: init scaffolds a new manuscript, convert
turns a LaTeX/Markdown/Word source into a styled document, format restyles
an existing document in place, and templates lists the available journal
styles.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cliConfig.TemplatesFile
		if path == "" {
			return nil
		}
		if err := style.LoadTemplates(registry, path); err != nil {
			return fmt.Errorf("loading custom templates: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Loaded custom templates from %s\n", path)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperkit.yaml or ~/.config/paperkit/paperkit.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperkit"))
		}
	}

	viper.SetEnvPrefix("PAPERKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	cliConfig = types.CLIConfig{
		Template:      viper.GetString("template"),
		TemplatesFile: viper.GetString("templates_file"),
		Convert: types.ConvertConfig{
			PandocPath:   viper.GetString("convert.pandoc_path"),
			Bibliography: viper.GetString("convert.bibliography"),
			Timeout:      viper.GetDuration("convert.timeout"),
			CacheDir:     viper.GetString("convert.cache_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
