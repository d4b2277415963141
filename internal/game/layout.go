package game

import (
	"image"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// canvasLayout places the bordered canvas on the screen.
type canvasLayout struct {
	origin viewport.Point // top-left of the content box
	size   float64        // content box side in pixels
	border float64
}

// screenSize is the logical screen needed for a canvas of the given size.
func screenSize(canvasSize int) (int, int) {
	side := canvasSize + 2*config.BorderWidth + 2*config.StatusHeight
	return max(side, config.WindowWidth), max(side+config.StatusHeight, config.WindowHeight)
}

// newCanvasLayout centers the canvas horizontally and below the status line.
func newCanvasLayout(canvasSize, screenW, screenH int) canvasLayout {
	outer := float64(canvasSize + 2*config.BorderWidth)
	top := float64(config.StatusHeight) + (float64(screenH-config.StatusHeight)-outer)/2
	return canvasLayout{
		origin: viewport.Point{
			X: (float64(screenW)-outer)/2 + config.BorderWidth,
			Y: top + config.BorderWidth,
		},
		size:   float64(canvasSize),
		border: config.BorderWidth,
	}
}

// contains reports whether p hits the canvas element, border included.
func (l canvasLayout) contains(p viewport.Point) bool {
	minX, minY := l.origin.X-l.border, l.origin.Y-l.border
	maxX, maxY := l.origin.X+l.size+l.border, l.origin.Y+l.size+l.border
	return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
}

// ctm is the screen CTM for vb, or nil before the canvas has a size.
func (l canvasLayout) ctm(vb viewport.ViewBox) *viewport.Matrix {
	if l.size <= 0 {
		return nil
	}
	m := vb.ScreenCTM(l.origin, l.size)
	return &m
}

func (l canvasLayout) contentRect() image.Rectangle {
	return image.Rect(int(l.origin.X), int(l.origin.Y), int(l.origin.X+l.size), int(l.origin.Y+l.size))
}

func (l canvasLayout) borderRect() image.Rectangle {
	return l.contentRect().Inset(-int(l.border))
}
