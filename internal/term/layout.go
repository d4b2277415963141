package term

import (
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// cellLayout is the canvas box on the terminal grid. Cells are about twice
// as tall as they are wide, so the content box is twice as wide as tall.
type cellLayout struct {
	x, y int // top-left content cell
	w, h int // content size in cells
}

const statusRows = 1

func newCellLayout(cols, rows int) cellLayout {
	availW := cols - 2
	availH := rows - statusRows - 2
	w := min(availW, 2*availH)
	if w < 2 {
		return cellLayout{}
	}
	w -= w % 2
	h := w / 2
	return cellLayout{
		x: (cols - w) / 2,
		y: statusRows + 1 + (availH-h)/2,
		w: w,
		h: h,
	}
}

func (l cellLayout) empty() bool { return l.w <= 0 || l.h <= 0 }

// contains reports whether the cell hits the canvas, frame included.
func (l cellLayout) contains(cx, cy int) bool {
	if l.empty() {
		return false
	}
	return cx >= l.x-1 && cx <= l.x+l.w && cy >= l.y-1 && cy <= l.y+l.h
}

// ctm maps local units to cell coordinates; cell (i, j) covers [i, i+1).
func (l cellLayout) ctm(vb viewport.ViewBox) *viewport.Matrix {
	if l.empty() {
		return nil
	}
	m := vb.ScreenCTMRect(viewport.Point{X: float64(l.x), Y: float64(l.y)}, float64(l.w), float64(l.h))
	return &m
}

// cellCenter is the screen point sampled for a cell.
func cellCenter(cx, cy int) viewport.Point {
	return viewport.Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
}
