package render

import (
	"image"
	"math"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/state"
)

// Renderer draws strokes through a Target. The zero value is not usable; set
// at least Spacing or use NewRenderer.
type Renderer struct {
	Brush   image.Image
	Scale   float32 // uniform stamp scale
	Spacing float32 // arc length between stamps
	Style   Style

	arc geom.ArcLength
}

// NewRenderer returns a renderer with stamps spaced and scaled alike, as the
// reference brush is.
func NewRenderer(brush image.Image, scale float32) *Renderer {
	return &Renderer{Brush: brush, Scale: scale, Spacing: scale, Style: DefaultStyle}
}

// Frame draws the reveal of every stroke at position, then the guides. It
// returns the number of brush stamps emitted.
func (r *Renderer) Frame(t Target, st *state.Store, position float32) int {
	n := r.Reveal(t, st, position)
	r.Guides(t, st)
	return n
}

// Reveal stamps the drawn part of every stroke whose window contains
// position and returns the number of stamps.
func (r *Renderer) Reveal(t Target, st *state.Store, position float32) int {
	n := 0
	for _, s := range st.Strokes() {
		n += r.RevealStroke(t, st.Vertices(s), s, position)
	}
	return n
}

// PercentDrawn returns how far through its window s is at position. A stroke
// with no duration is complete as soon as its window is entered.
func PercentDrawn(s state.Stroke, position float32) float32 {
	if s.Duration <= 0 {
		return 1
	}
	return (position - s.Start) / s.Duration
}

// StrokeLength sums the estimated lengths of the segments of vs. Reveal
// timing is based on this estimate, not on the arc length tables.
func StrokeLength(vs []geom.Vertex) float32 {
	var total float32
	for i := 0; i+1 < len(vs); i++ {
		total += geom.SegmentBetween(vs[i], vs[i+1]).EstimateLength()
	}
	return total
}

// RevealStroke stamps the part of one stroke that is drawn at position.
// Stamps are spaced evenly in arc length along each segment.
func (r *Renderer) RevealStroke(t Target, vs []geom.Vertex, s state.Stroke, position float32) int {
	if len(vs) < 2 || !s.Covers(position) {
		return 0
	}

	drawn := StrokeLength(vs) * PercentDrawn(s, position)
	spacing := r.Spacing
	if spacing <= 0 {
		spacing = 1
	}

	var soFar float32
	stamps := 0
	for i := 0; i+1 < len(vs); i++ {
		seg := geom.SegmentBetween(vs[i], vs[i+1])
		segLen := seg.EstimateLength()
		if segLen <= 0 {
			// A collapsed segment is drawn the instant it is reached.
			continue
		}

		segPercent := (drawn - soFar) / segLen
		if segPercent <= 0 {
			break
		}
		segPercent = min(segPercent, 1)

		total := int(math.Ceil(float64(segLen / spacing)))
		count := int(math.Ceil(float64(segPercent * float32(total))))
		soFar += segLen

		r.arc.Rebuild(seg)
		for p := range count {
			at := seg.At(r.arc.ParamAt(float32(p) / float32(total)))
			// Rotation is the stamp counter, not the curve heading.
			t.Stamp(at, r.Scale, float32(p), r.Brush)
		}
		stamps += count

		if segPercent < 1 {
			break
		}
	}
	return stamps
}
