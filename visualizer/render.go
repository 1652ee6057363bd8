package visualizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/amp-labs/automaat/cmd"
	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/should"
)

var (
	// ErrRenderFailed wraps any failure of the Graphviz process.
	ErrRenderFailed = errors.New("failed to render graph")
	// ErrUnsupportedFormat indicates an image format Render does not emit.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Formats lists the image formats Render accepts.
var Formats = []string{"jpg", "png", "svg", "pdf"} //nolint:gochecknoglobals

// Renderer turns DOT text into images by piping it to a Graphviz binary.
type Renderer struct {
	// Binary is the dot executable, looked up on PATH when not absolute.
	Binary string
}

// DefaultRenderer uses dot from PATH.
func DefaultRenderer() Renderer {
	return Renderer{Binary: "dot"}
}

// Render writes dot rendered as format to path using the default renderer.
func Render(ctx context.Context, dot, format, path string) error {
	return DefaultRenderer().Render(ctx, dot, format, path)
}

// Render runs `dot -T<format> -o <path>` with dot on stdin. The process is
// killed if ctx is done first. On failure a file the renderer created at
// path is removed; a file that was there before is left alone.
func (r Renderer) Render(ctx context.Context, dot, format, path string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	var stderr string

	code, err := cmd.New(ctx, r.Binary, "-T"+format, "-o", path).
		SetStdinBytes([]byte(dot)).
		SetStderrObserver(func(b []byte) { stderr = strings.TrimSpace(string(b)) }).
		Run()
	if err == nil && code != 0 {
		err = fmt.Errorf("%s exited with status %d: %s", r.Binary, code, stderr) //nolint:err113
	}

	if err != nil {
		if !existed {
			should.Remove(ctx, path, "removing partial render")
		}

		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	logger.Get(ctx).Debug("rendered graph", "format", format, "path", path)

	return nil
}
