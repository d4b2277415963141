//go:build js

package export

import "github.com/iburimskiy/svg-pan/internal/svgdoc"

// Save is unavailable in the browser.
func Save(svgdoc.Document) (string, error) {
	return "", ErrUnsupported
}
