// Package render turns DOT files into images by running a Graphviz layout
// engine as a subprocess.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/plan-systems/klog"
)

// Sentinel errors.
var (
	// ErrRendererMissing is returned when the layout binary is not on PATH.
	ErrRendererMissing = errors.New("render: renderer not found")

	// ErrRenderFailed wraps a non-zero exit of the layout binary.
	ErrRenderFailed = errors.New("render: renderer failed")
)

// Defaults. neato honours the pinned "pos" attributes that graphio writes.
const (
	DefaultCommand = "neato"
	DefaultFormat  = "png"
	DefaultTimeout = 30 * time.Second
)

// Renderer runs one Graphviz engine. The zero value uses the defaults.
type Renderer struct {
	Command string
	Format  string
	Timeout time.Duration
}

func (r Renderer) command() string {
	if r.Command == "" {
		return DefaultCommand
	}
	return r.Command
}

func (r Renderer) format() string {
	if r.Format == "" {
		return DefaultFormat
	}
	return r.Format
}

// Args returns the argument list passed to the engine.
func (r Renderer) Args(dotPath, outPath string) []string {
	return []string{"-n", "-T" + r.format(), "-o", outPath, dotPath}
}

// Available reports whether the engine binary is on PATH.
func (r Renderer) Available() bool {
	_, err := exec.LookPath(r.command())
	return err == nil
}

// Render lays out dotPath and writes the image to outPath. Cancelling ctx or
// exceeding Timeout kills the subprocess.
func (r Renderer) Render(ctx context.Context, dotPath, outPath string) error {
	bin, err := exec.LookPath(r.command())
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrRendererMissing, r.command(), err)
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errbuf bytes.Buffer
	c := exec.CommandContext(ctx, bin, r.Args(dotPath, outPath)...)
	c.Stderr = &errbuf

	klog.V(1).Infof("render: %s %s", bin, strings.Join(c.Args[1:], " "))
	if err = c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited %d: %s", ErrRenderFailed, r.command(),
				exitErr.ExitCode(), strings.TrimSpace(errbuf.String()))
		}
		return fmt.Errorf("render: run %s: %w", r.command(), err)
	}
	return nil
}
