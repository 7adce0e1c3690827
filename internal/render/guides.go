package render

import (
	"image/color"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/state"
)

// Guides draws the editing aids for every stroke regardless of the timeline:
// a tessellated preview of each segment, the handle lines of each vertex and
// the control point markers.
func (r *Renderer) Guides(t Target, st *state.Store) {
	strokes := st.Strokes()

	for _, s := range strokes {
		for i := range s.Segments() {
			t.LineStrip(Tessellate(st.Segment(s, i)), r.Style.Curve, r.Style.CurveWidth)
		}
	}

	for _, s := range strokes {
		for _, v := range st.Vertices(s) {
			t.LineStrip([]geom.Point{v.Handles[geom.HandleIn], v.Anchor, v.Handles[geom.HandleOut]}, r.Style.Handle, r.Style.CurveWidth)
		}
	}

	for _, s := range strokes {
		vs := st.Vertices(s)
		markers(t, vs, r.Style.MarkerSize, r.Style.Marker)
		markers(t, vs, r.Style.HighlightSize, r.Style.Highlight)
	}
}

func markers(t Target, vs []geom.Vertex, size float32, c color.Color) {
	for _, v := range vs {
		t.Point(v.Anchor, size, c)
		t.Point(v.Handles[geom.HandleIn], size, c)
		t.Point(v.Handles[geom.HandleOut], size, c)
	}
}

// Tessellate samples s at MinSegments uniform steps of t, endpoints included.
func Tessellate(s geom.Segment) []geom.Point {
	n := geom.MinSegments(s.EstimateLength())
	pts := make([]geom.Point, 0, n+1)
	for k := 0; k <= n; k++ {
		pts = append(pts, s.At(float32(k)/float32(n)))
	}
	return pts
}
