package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// debug font metrics
const (
	glyphWidth = 6
	lineHeight = 16
	textMargin = 4
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawCanvas(screen)

	top, bottom := g.statusLines()
	ebitenutil.DebugPrintAt(screen, top, textMargin, 2)
	if bottom != "" {
		ebitenutil.DebugPrintAt(screen, bottom, textMargin, g.screenH-lineHeight-2)
	}
}

func (g *Game) drawCanvas(screen *ebiten.Image) {
	fillRect(screen, g.layout.borderRect(), g.cfg.BorderColor)

	content := g.layout.contentRect()
	canvas, ok := screen.SubImage(content).(*ebiten.Image)
	if !ok {
		return
	}
	canvas.Fill(g.cfg.Background)

	ctm := g.layout.ctm(g.view.ViewBox())
	if ctm == nil {
		return
	}
	c, r := circleOnScreen(*ctm)
	// The sub-image clips the circle to the canvas, like overflow on <svg>.
	vector.DrawFilledCircle(canvas, float32(c.X), float32(c.Y), float32(r), g.cfg.CircleFill, true)
}

// circleOnScreen maps the circle through the CTM. The CTM has no rotation
// or skew, so the radius scales by A.
func circleOnScreen(ctm viewport.Matrix) (viewport.Point, float64) {
	c := ctm.Apply(viewport.Point{X: config.CircleCX, Y: config.CircleCY})
	return c, config.CircleRadius * ctm.A
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// statusLines returns the viewBox line shown above the canvas and the
// export/error line shown below it, each clipped to the screen width.
func (g *Game) statusLines() (top, bottom string) {
	cols := (g.screenW - 2*textMargin) / glyphWidth

	top = "viewBox " + g.view.ViewBox().String()
	if help := "  drag: pan  R: reset  E: export  Q: quit"; len(top)+len(help) <= cols {
		top += help
	}

	switch {
	case g.lastErr != nil:
		bottom = "Error: " + g.lastErr.Error()
	case g.lastExport != "":
		bottom = "saved " + g.lastExport
	}
	return clip(top, cols), clip(bottom, cols)
}

func clip(s string, cols int) string {
	r := []rune(s)
	if len(r) <= cols {
		return s
	}
	if cols <= 3 {
		return string(r[:max(cols, 0)])
	}
	return string(r[:cols-3]) + "..."
}
