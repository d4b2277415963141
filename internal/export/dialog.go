//go:build !js

package export

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/svg-pan/internal/svgdoc"
)

// Save asks for a destination and writes doc there. A cancelled dialog
// returns "" and a nil error.
func Save(doc svgdoc.Document) (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export View"),
		zenity.Filename(DefaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return WriteFile(filename, doc)
}
