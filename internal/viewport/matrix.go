package viewport

import "math"

// Point is a 2D coordinate, in screen pixels or local units depending on context.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Matrix is an affine transform laid out like an SVGMatrix:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// A screen CTM maps local coordinates to screen pixels.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns m followed by a translation of (tx, ty).
func (m Matrix) Translate(tx, ty float64) Matrix {
	m.E += tx
	m.F += ty
	return m
}

// Scale returns m followed by a scale of (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{
		A: m.A * sx, B: m.B * sy,
		C: m.C * sx, D: m.D * sy,
		E: m.E * sx, F: m.F * sy,
	}
}

// Apply maps p through m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse of m. ok is false when m is singular or
// holds non-finite values.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	inv = Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}
	return inv, true
}

// ToLocal converts a screen point into local coordinates by inverting the
// screen CTM. A nil or singular ctm yields ok == false and the caller is
// expected to skip the update.
func ToLocal(ctm *Matrix, screen Point) (local Point, ok bool) {
	if ctm == nil {
		return Point{}, false
	}
	inv, ok := ctm.Invert()
	if !ok {
		return Point{}, false
	}
	return inv.Apply(screen), true
}
