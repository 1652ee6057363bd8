// Package should runs cleanup steps whose failure is worth a log line but
// not an error return, which makes them usable in defer statements.
package should

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/amp-labs/automaat/logger"
)

// Close closes c and logs msg with the error if that fails.
//
//	defer should.Close(ctx, tty, "closing /dev/tty")
func Close(ctx context.Context, c io.Closer, msg string) {
	if err := c.Close(); err != nil {
		logger.Get(ctx).Warn(msg, "error", err)
	}
}

// Remove deletes path and logs msg with the error if that fails. A path
// that is already gone is not a failure.
func Remove(ctx context.Context, path string, msg string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get(ctx).Warn(msg, "path", path, "error", err)
	}
}
