// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paperkit/internal/docx"
	"github.com/pdiddy/paperkit/internal/style"
	"github.com/pdiddy/paperkit/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	runErr        error
	stderr        string
	gotName       string
	gotArgs       []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(_ context.Context, name string, args ...string) (string, error) {
	m.gotName = name
	m.gotArgs = args
	if m.runErr != nil {
		return m.stderr, m.runErr
	}
	return "", nil
}

func TestPandocAvailable(t *testing.T) {
	tests := []struct {
		name string
		exec *mockExecutor
		want bool
	}{
		{
			name: "present and responding",
			exec: &mockExecutor{availableBins: map[string]bool{"pandoc": true}},
			want: true,
		},
		{
			name: "not on PATH",
			exec: &mockExecutor{availableBins: map[string]bool{}},
			want: false,
		},
		{
			name: "version query fails",
			exec: &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
				runErr:        errors.New("crash"),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPandoc("", 0)
			p.exec = tt.exec
			if got := p.Available(); got != tt.want {
				t.Errorf("Available() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPandocConvertArgs(t *testing.T) {
	tests := []struct {
		name         string
		bibliography string
		cslStyle     string
		want         string
	}{
		{
			name: "plain",
			want: "in.tex -s -o out.docx",
		},
		{
			name:         "with bibliography",
			bibliography: "library.bib",
			cslStyle:     "apa.csl",
			want:         "in.tex -s -o out.docx --bibliography library.bib --citeproc --csl apa.csl",
		},
		{
			name:         "bibliography without style",
			bibliography: "library.bib",
			want:         "in.tex -s -o out.docx --bibliography library.bib --citeproc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{availableBins: map[string]bool{"pandoc": true}}
			p := NewPandoc("", 0)
			p.exec = exec

			err := p.Convert(context.Background(), "in.tex", "out.docx", tt.bibliography, tt.cslStyle)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(exec.gotArgs, " "); got != tt.want {
				t.Errorf("args = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPandocConvertFailure(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		runErr:        errors.New("exit status 1"),
		stderr:        "undefined control sequence",
	}
	p := NewPandoc("", 0)
	p.exec = exec

	err := p.Convert(context.Background(), "in.tex", "out.docx", "", "")
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %v, want *ToolError", err)
	}
	if !strings.Contains(toolErr.Error(), "undefined control sequence") {
		t.Errorf("error message %q does not carry stderr", toolErr.Error())
	}
}

// fakeTool fabricates a valid empty document at the requested output path.
type fakeTool struct {
	available bool
	err       error
	gotInput  string
	gotOutput string
	gotBib    string
	gotCSL    string
}

func (f *fakeTool) Available() bool { return f.available }

func (f *fakeTool) Convert(_ context.Context, input, output, bibliography, cslStyle string) error {
	f.gotInput, f.gotOutput, f.gotBib, f.gotCSL = input, output, bibliography, cslStyle
	if f.err != nil {
		return f.err
	}
	d, err := docx.New("en-US")
	if err != nil {
		return err
	}
	return d.Save(output)
}

func testProfile(t *testing.T) types.Profile {
	t.Helper()
	p, err := style.NewRegistry().Resolve("default", types.Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func writeManuscript(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("# Title\n\nBody.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewPipeline(t *testing.T) {
	cfg := types.ConvertConfig{
		PandocPath:   "/opt/pandoc/bin/pandoc",
		Bibliography: "refs.bib",
		Timeout:      10 * time.Second,
	}
	pl := NewPipeline(cfg, "apa.csl", io.Discard)

	if pl.Bibliography != "refs.bib" {
		t.Errorf("bibliography = %q, want refs.bib", pl.Bibliography)
	}
	if pl.CSLStyle != "apa.csl" {
		t.Errorf("csl style = %q, want apa.csl", pl.CSLStyle)
	}
	tool, ok := pl.Tool.(*Pandoc)
	if !ok {
		t.Fatalf("tool = %T, want *Pandoc", pl.Tool)
	}
	if tool.bin != "/opt/pandoc/bin/pandoc" {
		t.Errorf("pandoc binary = %q", tool.bin)
	}
	if tool.timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", tool.timeout)
	}
}

func TestNewPipelineDefaults(t *testing.T) {
	pl := NewPipeline(types.ConvertConfig{}, "", nil)
	tool := pl.Tool.(*Pandoc)
	if tool.bin != "pandoc" {
		t.Errorf("pandoc binary = %q, want pandoc", tool.bin)
	}
	if tool.timeout != 5*time.Minute {
		t.Errorf("timeout = %v, want 5m", tool.timeout)
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	pl := &Pipeline{Tool: &fakeTool{available: true}}
	_, err := pl.ConvertFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"), "", testProfile(t))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestConvertFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	input := writeManuscript(t, dir, "paper.rtf")

	pl := &Pipeline{Tool: &fakeTool{available: true}}
	_, err := pl.ConvertFile(context.Background(), input, "", testProfile(t))

	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("error = %v, want *UnsupportedFormatError", err)
	}
	if !strings.Contains(ufe.Error(), ".rtf") {
		t.Errorf("error message %q does not name the extension", ufe.Error())
	}
}

func TestConvertFileToolMissing(t *testing.T) {
	dir := t.TempDir()
	input := writeManuscript(t, dir, "paper.tex")

	pl := &Pipeline{Tool: &fakeTool{available: false}}
	_, err := pl.ConvertFile(context.Background(), input, "", testProfile(t))

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %v, want *ToolError", err)
	}
}

func TestConvertFileMarkdown(t *testing.T) {
	dir := t.TempDir()
	input := writeManuscript(t, dir, "paper.md")
	output := filepath.Join(dir, "paper.docx")

	tool := &fakeTool{available: true}
	pl := &Pipeline{Tool: tool, Bibliography: "refs.bib", CSLStyle: "apa.csl", Out: io.Discard}

	res, err := pl.ConvertFile(context.Background(), input, "", testProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Paragraphs != 0 {
		t.Errorf("paragraphs = %d, want 0 for the blank fixture", res.Paragraphs)
	}

	if tool.gotInput != input {
		t.Errorf("tool input = %q, want %q", tool.gotInput, input)
	}
	wantTemp := filepath.Join(dir, ".temp_paper.docx")
	if tool.gotOutput != wantTemp {
		t.Errorf("tool output = %q, want %q", tool.gotOutput, wantTemp)
	}
	if tool.gotBib != "refs.bib" || tool.gotCSL != "apa.csl" {
		t.Errorf("tool citations = (%q, %q)", tool.gotBib, tool.gotCSL)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("styled output missing: %v", err)
	}
	if _, err := os.Stat(wantTemp); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file not removed: %v", err)
	}
}

func TestConvertFileToolFailureRemovesTemp(t *testing.T) {
	dir := t.TempDir()
	input := writeManuscript(t, dir, "paper.tex")

	tool := &fakeTool{available: true, err: errors.New("boom")}
	pl := &Pipeline{Tool: tool}

	_, err := pl.ConvertFile(context.Background(), input, "", testProfile(t))
	if err == nil {
		t.Fatal("expected error from failing tool")
	}
	if _, err := os.Stat(filepath.Join(dir, ".temp_paper.docx")); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file left behind on failure")
	}
}

func TestConvertFileDocx(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "draft.docx")

	d, err := docx.New("en-US")
	if err != nil {
		t.Fatal(err)
	}
	para := d.AddParagraph()
	para.AddRun("Some body text.")
	if err := d.Save(input); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "styled.docx")
	pl := &Pipeline{} // no tool needed for Word inputs
	p := testProfile(t)

	res, err := pl.ConvertFile(context.Background(), input, output, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Paragraphs != 1 {
		t.Errorf("paragraphs = %d, want 1", res.Paragraphs)
	}

	styled, err := docx.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	run := styled.Nodes()[0].Paragraph.Runs()[0]
	if run.Font() != p.Font {
		t.Errorf("font = %q, want %q", run.Font(), p.Font)
	}
	if run.SizePt() != p.FontSize {
		t.Errorf("size = %d, want %d", run.SizePt(), p.FontSize)
	}
}
