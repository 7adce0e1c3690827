package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curvy = Segment{A: Pt(100, 100), H1: Pt(150, 100), H2: Pt(300, 350), B: Pt(350, 350)}

func TestCubicEndpointsAreExact(t *testing.T) {
	segs := []Segment{
		curvy,
		{A: Pt(-3.25, 7.5), H1: Pt(1000, -1000), H2: Pt(0.1, 0.2), B: Pt(12.125, -9)},
		{A: Pt(5, 5), H1: Pt(5, 5), H2: Pt(5, 5), B: Pt(5, 5)},
	}
	for _, s := range segs {
		assert.Equal(t, s.A, Cubic(s.A, s.H1, s.H2, s.B, 0))
		assert.Equal(t, s.B, Cubic(s.A, s.H1, s.H2, s.B, 1))
	}
}

func TestCubicExtrapolates(t *testing.T) {
	s := Segment{A: Pt(0, 0), H1: Pt(10, 0), H2: Pt(20, 0), B: Pt(30, 0)}
	assert.InDelta(t, 60, s.At(2).X, 1e-3)
	assert.InDelta(t, -30, s.At(-1).X, 1e-3)
}

func TestEstimateLength(t *testing.T) {
	s := Segment{A: Pt(0, 0), H1: Pt(3, 4), H2: Pt(3, 4.5), B: Pt(3, 10)}
	// 5 + 0.5 + 5.5 = 11
	assert.Equal(t, float32(11), s.EstimateLength())

	s = Segment{A: Pt(0, 0), H1: Pt(1, 1), H2: Pt(1, 1), B: Pt(1, 1)}
	assert.Equal(t, float32(2), s.EstimateLength(), "sqrt(2) rounds up")
}

func TestVectorHelpers(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Add(Pt(1, 2), Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Sub(Pt(1, 2), Pt(3, 4)))
	assert.Equal(t, float32(5), Len(Pt(3, 4)))
	assert.Equal(t, float32(5), Dist(Pt(1, 1), Pt(4, 5)))
	assert.Equal(t, Pt(2, 3), Lerp(Pt(0, 0), Pt(4, 6), 0.5))
	assert.InDelta(t, 75, Remap(0.5, 0, 1, 50, 100), 1e-6)
}

func TestNewVertexHandles(t *testing.T) {
	v := NewVertex(Pt(10, 10), 20)
	assert.Equal(t, Pt(10, 10), v.Anchor)
	assert.Equal(t, Pt(-10, 10), v.Handles[HandleIn])
	assert.Equal(t, Pt(30, 10), v.Handles[HandleOut])
}

func TestSegmentBetween(t *testing.T) {
	a := NewVertex(Pt(0, 0), 5)
	b := NewVertex(Pt(100, 0), 5)
	s := SegmentBetween(a, b)
	assert.Equal(t, Segment{A: Pt(0, 0), H1: Pt(5, 0), H2: Pt(95, 0), B: Pt(100, 0)}, s)
}

func TestMinSegments(t *testing.T) {
	assert.Equal(t, 10, MinSegments(0))
	assert.Equal(t, 11, MinSegments(100))
	assert.Equal(t, 12, MinSegments(200))

	prev := MinSegments(0)
	for l := float32(0); l < 20000; l += 7.5 {
		n := MinSegments(l)
		require.GreaterOrEqual(t, n, prev, "length %v", l)
		prev = n
	}
	// Far from the floor the count grows like sqrt(0.6)/30 per unit.
	assert.InDelta(t, math.Sqrt(0.6)*30000/30, MinSegments(30000), 2)
}

func TestArcLengthBoundaries(t *testing.T) {
	segs := []Segment{
		curvy,
		{A: Pt(0, 0), H1: Pt(500, 0), H2: Pt(-500, 0), B: Pt(0, 1)},
		{A: Pt(0, 0), H1: Pt(0, 0), H2: Pt(0, 0), B: Pt(0, 0)},
	}
	for _, s := range segs {
		al := NewArcLength(s)
		assert.Equal(t, float32(0), al.ParamAt(0))
		assert.Equal(t, float32(1), al.ParamAt(1))
		assert.Equal(t, float32(-0.5), al.ParamAt(-0.5))
		assert.Equal(t, float32(1.5), al.ParamAt(1.5))
	}
}

func TestArcLengthStraightLine(t *testing.T) {
	s := Segment{A: Pt(0, 0), H1: Pt(100, 0), H2: Pt(200, 0), B: Pt(300, 0)}
	al := NewArcLength(s)
	assert.InDelta(t, 300, al.Total(), 1e-2)
	assert.InDelta(t, 0.5, al.ParamAt(0.5), 1.0/ArcLengthBuckets)
	assert.InDelta(t, 0.25, al.ParamAt(0.25), 1.0/ArcLengthBuckets)
}

func TestArcLengthIsUniformInDistance(t *testing.T) {
	// Handles bunched at the start make uniform t sampling visibly uneven.
	s := Segment{A: Pt(0, 0), H1: Pt(1, 0), H2: Pt(2, 0), B: Pt(300, 0)}
	al := NewArcLength(s)
	assert.InDelta(t, 300, al.Total(), 0.1)

	for _, f := range []float32{0.1, 0.3, 0.5, 0.9} {
		p := s.At(al.ParamAt(f))
		assert.InDelta(t, 300*f, p.X, 1.0, "fraction %v", f)
	}

	prev := float32(0)
	for i := 1; i < 100; i++ {
		u := al.ParamAt(float32(i) / 100)
		require.Greater(t, u, prev)
		prev = u
	}
}

func TestArcLengthZeroLength(t *testing.T) {
	for _, p := range []Point{Pt(7, 7), Pt(1234.5, 1234.5)} {
		al := NewArcLength(Segment{A: p, H1: p, H2: p, B: p})
		assert.Equal(t, float32(0), al.Total())
		assert.Equal(t, float32(0.3), al.ParamAt(0.3))
		assert.Equal(t, float32(0.5), al.ParamAt(0.5))
	}
}

func TestArcLengthRebuildClearsCollapsed(t *testing.T) {
	al := NewArcLength(curvy)
	p := Pt(3, 4)
	assert.Equal(t, float32(0), al.Rebuild(Segment{A: p, H1: p, H2: p, B: p}))
	assert.Equal(t, float32(0.7), al.ParamAt(0.7))
}

func TestArcLengthRebuildReplaces(t *testing.T) {
	al := NewArcLength(curvy)
	total := al.Rebuild(Segment{A: Pt(0, 0), H1: Pt(10, 0), H2: Pt(20, 0), B: Pt(30, 0)})
	assert.InDelta(t, 30, total, 1e-3)
	assert.Equal(t, total, al.Total())
}

func TestClosestPoint(t *testing.T) {
	s := Segment{A: Pt(0, 0), H1: Pt(100, 0), H2: Pt(200, 0), B: Pt(300, 0)}
	p, u := ClosestPoint(s, 16, 10, Pt(150, 40))
	assert.InDelta(t, 150, p.X, 1)
	assert.InDelta(t, 0, p.Y, 1e-3)
	assert.InDelta(t, 0.5, u, 0.01)

	p, u = ClosestPoint(s, 16, 10, Pt(-50, 0))
	assert.Equal(t, Pt(0, 0), p)
	assert.Equal(t, float32(0), u)
}
