package editor

import (
	"MotionBoard/internal/geom"
	"MotionBoard/internal/state"
)

// Closest point search settings used when picking strokes by their curve.
const (
	pickResolution = 16
	pickIterations = 8
)

// SelectAt selects the topmost stroke whose curve passes within the select
// tolerance of p. It returns false, leaving the selection alone, when no
// stroke is close enough.
func (s *Session) SelectAt(p geom.Point) bool {
	tol := s.opts.SelectTolerance
	strokes := s.store.Strokes()

	for i := len(strokes) - 1; i >= 0; i-- {
		st := strokes[i]
		vs := s.store.Vertices(st)
		if len(vs) == 0 || !state.Bounds(vs).Pad(tol).Contains(p) {
			continue
		}
		if hitsCurve(vs, p, tol) {
			_ = s.Select(st.ID)
			return true
		}
	}
	return false
}

func hitsCurve(vs []geom.Vertex, p geom.Point, tol float32) bool {
	if len(vs) == 1 {
		return geom.Dist(vs[0].Anchor, p) <= tol
	}
	for i := 0; i+1 < len(vs); i++ {
		q, _ := geom.ClosestPoint(geom.SegmentBetween(vs[i], vs[i+1]), pickResolution, pickIterations, p)
		if geom.Dist(q, p) <= tol {
			return true
		}
	}
	return false
}

// SetSelectedStart moves the selected stroke's window to begin at t, keeping
// its duration. t is clamped to the timeline.
func (s *Session) SetSelectedStart(t float32) error {
	sel, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	t = min(max(t, 0), s.timeline.Duration())
	return s.store.Retime(sel.ID, t, sel.Duration)
}

// SetSelectedEnd stretches or shrinks the selected stroke so that it ends at
// t. The duration never drops below a hundredth of a second.
func (s *Session) SetSelectedEnd(t float32) error {
	sel, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	t = min(max(t, 0), s.timeline.Duration())
	return s.store.Retime(sel.ID, sel.Start, max(t-sel.Start, minStrokeDuration))
}

// Seed adds the demo stroke shown on a fresh board and selects it.
func (s *Session) Seed() error {
	st, err := s.store.NewStroke(0, 5)
	if err != nil {
		return err
	}
	for _, a := range []geom.Point{geom.Pt(100, 100), geom.Pt(350, 350)} {
		if _, err := s.store.AppendVertex(st.ID, geom.NewVertex(a, 50)); err != nil {
			return err
		}
	}
	return s.Select(st.ID)
}
