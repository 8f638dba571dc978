// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConvertConfig holds settings for the external conversion step.
type ConvertConfig struct {
	// PandocPath is the pandoc binary to invoke. Empty means "pandoc"
	// resolved from PATH.
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`

	// Bibliography is the path to a BibTeX file passed to pandoc. When
	// set, citation processing is enabled and the profile's CSL style
	// is applied.
	Bibliography string `json:"bibliography" yaml:"bibliography"`

	// Timeout bounds a single pandoc run (default 5 minutes).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// CacheDir is where fetched CSL style sheets are cached. Empty
	// disables style caching and the style URL is passed to pandoc
	// directly.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
}

// CLIConfig groups the settings read from paperkit.yaml and the
// PAPERKIT_* environment.
type CLIConfig struct {
	// Template is the default journal template when no --template flag
	// is given.
	Template string `json:"template" yaml:"template"`

	// TemplatesFile points to a YAML file of user-defined journal
	// templates merged into the builtin registry.
	TemplatesFile string `json:"templates_file" yaml:"templates_file"`

	Convert ConvertConfig `json:"convert" yaml:"convert"`
}
