// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns LaTeX and Markdown manuscripts into styled Word
// documents. Pandoc does the raw conversion as a subprocess; the style
// pass runs over its output. Word inputs skip pandoc and are restyled
// directly.
package convert

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

const (
	binPandoc = "pandoc"

	// defaultTimeout bounds one pandoc run.
	defaultTimeout = 5 * time.Minute
)

// ToolError reports a failure of the external conversion tool: missing
// binary, non-zero exit, or timeout.
type ToolError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), err
	}
	return "", nil
}

// Pandoc runs the pandoc binary.
type Pandoc struct {
	bin     string
	timeout time.Duration
	exec    executor
}

// NewPandoc returns a pandoc runner. bin may be empty to resolve "pandoc"
// from PATH; timeout zero means the 5 minute default.
func NewPandoc(bin string, timeout time.Duration) *Pandoc {
	if bin == "" {
		bin = binPandoc
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Pandoc{bin: bin, timeout: timeout, exec: osExecutor{}}
}

// Available reports whether the pandoc binary exists on PATH and responds
// to a version query.
func (p *Pandoc) Available() bool {
	if _, err := p.exec.LookPath(p.bin); err != nil {
		return false
	}
	_, err := p.exec.Run(context.Background(), p.bin, "--version")
	return err == nil
}

// Convert runs pandoc on input, writing a standalone document to output.
// A non-empty bibliography enables citeproc with the given CSL style.
func (p *Pandoc) Convert(ctx context.Context, input, output, bibliography, cslStyle string) error {
	args := []string{input, "-s", "-o", output}
	if bibliography != "" {
		args = append(args, "--bibliography", bibliography, "--citeproc")
		if cslStyle != "" {
			args = append(args, "--csl", cslStyle)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	stderr, err := p.exec.Run(ctx, p.bin, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &ToolError{Tool: p.bin, Err: fmt.Errorf("timed out after %s", p.timeout)}
		}
		return &ToolError{Tool: p.bin, Err: err, Stderr: stderr}
	}
	return nil
}
