// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperkit/internal/docx"
	"github.com/pdiddy/paperkit/internal/format"
	"github.com/pdiddy/paperkit/pkg/types"
)

// UnsupportedFormatError reports an input file the pipeline cannot handle.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q. Supported: .tex, .md, .docx", filepath.Ext(e.Path))
}

// Tool converts a manuscript to an unstyled Word document.
type Tool interface {
	Available() bool
	Convert(ctx context.Context, input, output, bibliography, cslStyle string) error
}

// Pipeline converts one input file into a styled Word document.
type Pipeline struct {
	Tool Tool

	// Bibliography and CSLStyle are handed to the tool when set.
	Bibliography string
	CSLStyle     string

	// Out receives progress reporting. Nil discards it.
	Out io.Writer
}

// NewPipeline builds a pipeline from conversion settings. The CSL style
// should already be resolved to a local path or a URL.
func NewPipeline(cfg types.ConvertConfig, cslStyle string, out io.Writer) *Pipeline {
	return &Pipeline{
		Tool:         NewPandoc(cfg.PandocPath, cfg.Timeout),
		Bibliography: cfg.Bibliography,
		CSLStyle:     cslStyle,
		Out:          out,
	}
}

func (pl *Pipeline) out() io.Writer {
	if pl.Out == nil {
		return io.Discard
	}
	return pl.Out
}

// ConvertFile converts input into a styled document at output. LaTeX and
// Markdown inputs go through the external tool first; Word inputs are
// restyled in place. An empty output defaults to the input path with a
// .docx suffix.
func (pl *Pipeline) ConvertFile(ctx context.Context, input, output string, p types.Profile) (format.Result, error) {
	if _, err := os.Stat(input); err != nil {
		return format.Result{}, fmt.Errorf("reading %s: %w", input, err)
	}

	ext := strings.ToLower(filepath.Ext(input))
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".docx"
	}

	switch ext {
	case ".docx":
		return pl.restyle(input, output, p)
	case ".tex", ".md":
		return pl.convertAndStyle(ctx, input, output, p)
	default:
		return format.Result{}, &UnsupportedFormatError{Path: input}
	}
}

// restyle applies the profile to an existing Word document.
func (pl *Pipeline) restyle(input, output string, p types.Profile) (format.Result, error) {
	fmt.Fprintf(pl.out(), "formatting %s -> %s\n", input, output)

	d, err := docx.Open(input)
	if err != nil {
		return format.Result{}, err
	}
	res := format.Apply(d, p, pl.out())
	if err := d.Save(output); err != nil {
		return res, err
	}
	return res, nil
}

// convertAndStyle runs the external tool into a temp file next to the
// output, then restyles the result. The temp file is removed afterwards.
func (pl *Pipeline) convertAndStyle(ctx context.Context, input, output string, p types.Profile) (format.Result, error) {
	if pl.Tool == nil || !pl.Tool.Available() {
		return format.Result{}, &ToolError{Tool: binPandoc, Err: errors.New("not found on PATH")}
	}

	temp := filepath.Join(filepath.Dir(output), ".temp_"+filepath.Base(output))

	fmt.Fprintf(pl.out(), "converting %s -> %s\n", input, temp)
	if err := pl.Tool.Convert(ctx, input, temp, pl.Bibliography, pl.CSLStyle); err != nil {
		os.Remove(temp)
		return format.Result{}, err
	}
	defer os.Remove(temp)

	if _, err := os.Stat(temp); err != nil {
		return format.Result{}, &ToolError{Tool: binPandoc, Err: errors.New("produced no output")}
	}

	return pl.restyle(temp, output, p)
}
