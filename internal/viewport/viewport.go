// Package viewport models the visible region of the canvas: a fixed-size
// viewBox centered on a point that moves as the user pans.
package viewport

import "strconv"

const (
	// Size is the width and height of the viewBox in local units.
	Size = 100.0
	half = Size / 2
)

// Home is the center the view starts at.
var Home = Center{X: half, Y: half}

// Center is the point the viewBox is centered on. It is stored at float32
// precision so the printed viewBox is always exactly center-50.
type Center struct {
	X, Y float32
}

// ViewBox is the visible region in local units.
type ViewBox struct {
	MinX, MinY, Width, Height float32
}

// ViewBox returns (x-50, y-50, 100, 100).
func (c Center) ViewBox() ViewBox {
	return ViewBox{MinX: c.X - half, MinY: c.Y - half, Width: Size, Height: Size}
}

// Reduce returns the center shifted by a pan delta. No bounds are applied.
func (c Center) Reduce(pan Point) Center {
	return Center{X: c.X + float32(pan.X), Y: c.Y + float32(pan.Y)}
}

// String formats the viewBox the way the SVG attribute expects it.
func (v ViewBox) String() string {
	return formatFloat(v.MinX) + " " + formatFloat(v.MinY) + " " +
		formatFloat(v.Width) + " " + formatFloat(v.Height)
}

// ScreenCTM returns the transform from local units to screen pixels for a
// viewport drawn into a square content box of side px whose top-left
// corner sits at origin. This is what getScreenCTM reports for an outer
// <svg> element.
func (v ViewBox) ScreenCTM(origin Point, px float64) Matrix {
	return v.ScreenCTMRect(origin, px, px)
}

// ScreenCTMRect is ScreenCTM for a content box that is w by h pixels.
// The viewBox is stretched to fill it; terminal cells are not square.
func (v ViewBox) ScreenCTMRect(origin Point, w, h float64) Matrix {
	if v.Width == 0 || v.Height == 0 {
		return Matrix{}
	}
	return Identity().
		Translate(-float64(v.MinX), -float64(v.MinY)).
		Scale(w/float64(v.Width), h/float64(v.Height)).
		Translate(origin.X, origin.Y)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
