package geom

import "math"

// Handle indices inside Vertex.Handles.
const (
	HandleIn  = 0
	HandleOut = 1
)

// Vertex is one node of a piecewise cubic curve: an on-curve anchor plus the
// incoming and outgoing handles.
type Vertex struct {
	Anchor  Point
	Handles [2]Point
}

// NewVertex places an anchor at p with both handles offset horizontally by
// ±offset.
func NewVertex(p Point, offset float32) Vertex {
	return Vertex{
		Anchor:  p,
		Handles: [2]Point{{p.X - offset, p.Y}, {p.X + offset, p.Y}},
	}
}

// Segment is the cubic between two consecutive vertices.
type Segment struct {
	A, H1, H2, B Point
}

// SegmentBetween derives the segment leaving a and arriving at b.
func SegmentBetween(a, b Vertex) Segment {
	return Segment{A: a.Anchor, H1: a.Handles[HandleOut], H2: b.Handles[HandleIn], B: b.Anchor}
}

// At evaluates the segment at t.
func (s Segment) At(t float32) Point {
	return Cubic(s.A, s.H1, s.H2, s.B, t)
}

// EstimateLength returns the rounded-up control polygon length of s.
func (s Segment) EstimateLength() float32 {
	return EstimateLength(s.A, s.H1, s.H2, s.B)
}

// Cubic evaluates the Bézier curve a, h1, h2, b at t. t is not clamped, so
// values outside [0, 1] extrapolate.
func Cubic(a, h1, h2, b Point, t float32) Point {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	return Point{
		X: a.X*mt3 + 3*h1.X*mt2*t + 3*h2.X*mt*t2 + b.X*t3,
		Y: a.Y*mt3 + 3*h1.Y*mt2*t + 3*h2.Y*mt*t2 + b.Y*t3,
	}
}

// EstimateLength sums the three control polygon chords and rounds up. It is an
// upper bound on the arc length, only good enough for sizing tessellation and
// reveal timing.
func EstimateLength(a, h1, h2, b Point) float32 {
	l := float64(Len(Sub(h1, a))) + float64(Len(Sub(h2, h1))) + float64(Len(Sub(b, h2)))
	return float32(math.Ceil(l))
}

// minSegmentsFloor is the segment count short curves never go below.
const minSegmentsFloor = 10

// MinSegments recommends how many polyline pieces a curve of the given length
// needs. It grows roughly linearly with length and approaches the floor in
// quadrature for short curves.
func MinSegments(length float32) int {
	s := float64(length) / 30
	return int(math.Ceil(math.Sqrt(s*s*0.6 + minSegmentsFloor*minSegmentsFloor)))
}

// ClosestPoint searches s for the point nearest to p. Each of the iterations
// samples resolution parameters across the current window, keeps the nearest
// one and shrinks the window to a third of its span on either side.
func ClosestPoint(s Segment, resolution, iterations int, p Point) (Point, float32) {
	if resolution < 2 {
		resolution = 2
	}
	if iterations < 1 {
		iterations = 1
	}

	lo, hi := float32(0), float32(1)
	best, bestT := s.A, float32(0)
	for range iterations {
		bestDist := float32(math.MaxFloat32)
		for r := range resolution {
			t := Remap(float32(r), 0, float32(resolution-1), lo, hi)
			q := s.At(t)
			if d := Dist(q, p); d < bestDist {
				bestDist, best, bestT = d, q, t
			}
		}

		spread := hi - lo
		lo = max(bestT-spread/3, 0)
		hi = min(bestT+spread/3, 1)
	}
	return best, bestT
}
