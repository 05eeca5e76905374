package model

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// TwipsPerPoint is the number of twips in one point.
const TwipsPerPoint = 20

// Point is a coordinate pair in twips.
type Point struct {
	X, Y int
}

// Points returns the coordinates converted to points.
func (p Point) Points() (x, y float64) {
	return float64(p.X) / TwipsPerPoint, float64(p.Y) / TwipsPerPoint
}

// Fixed returns the point in 26.6 fixed-point points, the unit used by
// rasterizers built on golang.org/x/image.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: twipsToFixed(p.X),
		Y: twipsToFixed(p.Y),
	}
}

func twipsToFixed(v int) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64 / TwipsPerPoint))
}

// Rect is an axis-aligned rectangle in twips.
type Rect struct {
	Min, Max Point
}

// Add grows r to include p.
func (r Rect) Add(p Point) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Dx returns the rectangle's width.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the rectangle's height.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
type Matrix struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// IsZero reports whether every field is zero, which is what the loader
// produces for a gradient without a matrix.
func (m Matrix) IsZero() bool {
	return m == Matrix{}
}

// Transform applies the matrix to (x, y).
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Aff3 returns the matrix in golang.org/x/image row-major form.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.TX,
		m.B, m.D, m.TY,
	}
}
