// Package export saves the current view as an SVG file.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iburimskiy/svg-pan/internal/svgdoc"
)

// ErrUnsupported is returned where no native save dialog exists.
var ErrUnsupported = errors.New("export not supported on this platform")

// DefaultName is offered in the save dialog.
const DefaultName = "view.svg"

// WriteFile renders doc to path, adding a .svg extension when missing.
// It returns the path actually written.
func WriteFile(path string, doc svgdoc.Document) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		path += ".svg"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := svgdoc.Render(f, doc); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
