// Package svgdoc renders the canvas as a standalone SVG document and as an
// HTML page hosting it.
package svgdoc

import (
	"html/template"
	"io"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// CanvasID is the element id the touch-move script looks up.
const CanvasID = "my-svg"

// Document describes one rendering of the canvas.
type Document struct {
	ViewBox viewport.ViewBox
	Config  *config.Config
}

type docData struct {
	ID          string
	Size        int
	ViewBox     string
	Background  string
	BorderWidth int
	Border      string
	CX, CY, R   int
	Fill        string
}

func (d Document) data() docData {
	cfg := d.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return docData{
		ID:          CanvasID,
		Size:        cfg.CanvasSize,
		ViewBox:     d.ViewBox.String(),
		Background:  config.Hex(cfg.Background),
		BorderWidth: config.BorderWidth,
		Border:      config.Hex(cfg.BorderColor),
		CX:          config.CircleCX,
		CY:          config.CircleCY,
		R:           config.CircleRadius,
		Fill:        config.Hex(cfg.CircleFill),
	}
}

const svgTmpl = `{{define "svg"}}<svg id="{{.ID}}" xmlns="http://www.w3.org/2000/svg" width="{{.Size}}px" height="{{.Size}}px" viewBox="{{.ViewBox}}" style="background-color:{{.Background}}; border: {{.BorderWidth}}px solid {{.Border}};">
<circle cx="{{.CX}}" cy="{{.CY}}" r="{{.R}}" fill="{{.Fill}}"/>
</svg>{{end}}`

const pageTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{template "svg" .Doc}}
{{if .Script}}<script>{{.Script}}</script>
{{end}}</body>
</html>
`

// TouchMoveScript stops touch drags on the canvas from scrolling the page.
const TouchMoveScript = `const svg = document.getElementById("` + CanvasID + `");svg.addEventListener("touchmove", e => e.preventDefault());`

var (
	docTemplate  = template.Must(template.New("doc").Parse(svgTmpl))
	pageTemplate = template.Must(template.Must(docTemplate.Clone()).New("page").Parse(pageTmpl))
)

// Render writes the SVG document for d.
func Render(w io.Writer, d Document) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	if err := docTemplate.ExecuteTemplate(w, "svg", d.data()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Page is an HTML page embedding the canvas. Interactive pages receive
// touch drags on the canvas; without it the page is a static snapshot.
type Page struct {
	Title       string
	Doc         Document
	Interactive bool
}

// RenderPage writes p as HTML. Interactive pages follow the inline SVG with
// the touch-move suppression script.
func RenderPage(w io.Writer, p Page) error {
	var script template.JS
	if p.Interactive {
		script = TouchMoveScript
	}
	return pageTemplate.ExecuteTemplate(w, "page", struct {
		Title  string
		Doc    docData
		Script template.JS
	}{p.Title, p.Doc.data(), script})
}
