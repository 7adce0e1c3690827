// Package geom implements the 2D point and cubic Bézier math used to build,
// measure and sample strokes.
package geom

import "math"

// Point is a 2D coordinate in board space.
type Point struct{ X, Y float32 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func Add(a, b Point) Point { return Point{a.X + b.X, a.Y + b.Y} }
func Sub(a, b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Scale multiplies both coordinates by s.
func Scale(a Point, s float32) Point { return Point{a.X * s, a.Y * s} }

// Len returns the Euclidean length of a treated as a vector.
func Len(a Point) float32 {
	return float32(math.Sqrt(float64(a.X)*float64(a.X) + float64(a.Y)*float64(a.Y)))
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float32 {
	return Len(Sub(b, a))
}

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float32) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Remap maps v from the range [inLo, inHi] onto [outLo, outHi] without
// clamping.
func Remap(v, inLo, inHi, outLo, outHi float32) float32 {
	return outLo + (outHi-outLo)*((v-inLo)/(inHi-inLo))
}
