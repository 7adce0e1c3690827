package state

import (
	"errors"
	"fmt"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/logging"

	"github.com/google/uuid"
)

var (
	ErrVertexCapacity       = errors.New("vertex arena is full")
	ErrStrokeVertexCapacity = errors.New("stroke has reached its vertex limit")
	ErrStrokeCapacity       = errors.New("stroke list is full")
	ErrStrokeSealed         = errors.New("stroke no longer owns the end of the vertex arena")
	ErrUnknownStroke        = errors.New("unknown stroke")
	ErrUnknownControl       = errors.New("control point out of range")
)

// Limits bounds the store. Every limit must be positive.
type Limits struct {
	Vertices       int // total vertices across all strokes
	StrokeVertices int // vertices in one stroke
	Strokes        int
}

// DefaultLimits matches the reference capacities.
var DefaultLimits = Limits{Vertices: 2048, StrokeVertices: 128, Strokes: 64}

// Store owns every stroke and the vertex arena they index into. The arena is
// append-only: vertices are never removed or moved, so a stroke's range stays
// valid for the life of the store. A Store is not safe for concurrent use.
type Store struct {
	limits   Limits
	vertices []geom.Vertex
	strokes  []Stroke
	index    map[uuid.UUID]int

	seq  uint64
	OnOp func(Op) // called after every applied mutation
}

// NewStore creates an empty store with the given limits.
func NewStore(limits Limits) *Store {
	return &Store{
		limits:   limits,
		vertices: make([]geom.Vertex, 0, limits.Vertices),
		strokes:  make([]Stroke, 0, limits.Strokes),
		index:    make(map[uuid.UUID]int, limits.Strokes),
	}
}

// Limits returns the capacities the store was created with.
func (st *Store) Limits() Limits { return st.limits }

// NewStroke appends an empty stroke whose range starts at the arena tail.
func (st *Store) NewStroke(start, duration float32) (Stroke, error) {
	if len(st.strokes) >= st.limits.Strokes {
		logging.For("store").Warn("stroke rejected", "strokes", len(st.strokes), "err", ErrStrokeCapacity)
		return Stroke{}, ErrStrokeCapacity
	}

	s := Stroke{
		ID:       uuid.New(),
		First:    len(st.vertices),
		Start:    start,
		Duration: duration,
	}
	st.index[s.ID] = len(st.strokes)
	st.strokes = append(st.strokes, s)

	logging.For("store").Info("stroke created", "stroke", s.ID, "start", start, "duration", duration)
	st.emit(Op{Type: OpInsertStroke, Stroke: s.ID, Start: start, Length: duration})
	return s, nil
}

// AppendVertex adds v to the end of the stroke and returns its index within
// the stroke. The stroke must own the arena tail. On error nothing changes.
func (st *Store) AppendVertex(id uuid.UUID, v geom.Vertex) (int, error) {
	i, ok := st.index[id]
	if !ok {
		return 0, fmt.Errorf("append to %s: %w", id, ErrUnknownStroke)
	}
	s := &st.strokes[i]

	switch {
	case s.First+s.Count != len(st.vertices):
		return 0, fmt.Errorf("append to %s: %w", id, ErrStrokeSealed)
	case s.Count >= st.limits.StrokeVertices:
		return 0, fmt.Errorf("append to %s: %w", id, ErrStrokeVertexCapacity)
	case len(st.vertices) >= st.limits.Vertices:
		return 0, fmt.Errorf("append to %s: %w", id, ErrVertexCapacity)
	}

	st.vertices = append(st.vertices, v)
	s.Count++

	logging.For("store").Debug("vertex appended", "stroke", id, "vertex", s.Count-1, "x", v.Anchor.X, "y", v.Anchor.Y)
	st.emit(Op{Type: OpAppendVertex, Stroke: id, Vertex: s.Count - 1, Point: v.Anchor})
	return s.Count - 1, nil
}

// Stroke looks up a stroke by ID.
func (st *Store) Stroke(id uuid.UUID) (Stroke, bool) {
	i, ok := st.index[id]
	if !ok {
		return Stroke{}, false
	}
	return st.strokes[i], true
}

// Strokes returns all strokes in drawing order. The slice is a copy.
func (st *Store) Strokes() []Stroke {
	out := make([]Stroke, len(st.strokes))
	copy(out, st.strokes)
	return out
}

// Len returns the number of strokes.
func (st *Store) Len() int { return len(st.strokes) }

// VertexLen returns how much of the arena is in use.
func (st *Store) VertexLen() int { return len(st.vertices) }

// Vertices returns the stroke's vertices as a read-only view into the arena.
// Callers must not append to or retain the slice across mutations.
func (st *Store) Vertices(s Stroke) []geom.Vertex {
	end := s.First + s.Count
	return st.vertices[s.First:end:end]
}

// Segment derives segment i (0-based) of the stroke.
func (st *Store) Segment(s Stroke, i int) geom.Segment {
	return geom.SegmentBetween(st.vertices[s.First+i], st.vertices[s.First+i+1])
}

// Control resolves ref to the current coordinates of the point it names.
func (st *Store) Control(ref ControlRef) (geom.Point, error) {
	v, err := st.vertex(ref)
	if err != nil {
		return geom.Point{}, err
	}
	return *ref.Part.of(v), nil
}

// SetControl overwrites the point ref names.
func (st *Store) SetControl(ref ControlRef, p geom.Point) error {
	v, err := st.vertex(ref)
	if err != nil {
		return err
	}
	*ref.Part.of(v) = p
	st.emit(Op{Type: OpMoveControl, Stroke: ref.Stroke, Vertex: ref.Vertex, Part: ref.Part, Point: p})
	return nil
}

// Retime moves the stroke's window on the timeline.
func (st *Store) Retime(id uuid.UUID, start, duration float32) error {
	i, ok := st.index[id]
	if !ok {
		return fmt.Errorf("retime %s: %w", id, ErrUnknownStroke)
	}
	st.strokes[i].Start = start
	st.strokes[i].Duration = duration
	st.emit(Op{Type: OpRetimeStroke, Stroke: id, Start: start, Length: duration})
	return nil
}

func (st *Store) vertex(ref ControlRef) (*geom.Vertex, error) {
	i, ok := st.index[ref.Stroke]
	if !ok {
		return nil, fmt.Errorf("control %s: %w", ref.Stroke, ErrUnknownStroke)
	}
	s := st.strokes[i]
	if ref.Vertex < 0 || ref.Vertex >= s.Count || ref.Part > PartHandleOut {
		return nil, fmt.Errorf("control %s/%d/%s: %w", ref.Stroke, ref.Vertex, ref.Part, ErrUnknownControl)
	}
	return &st.vertices[s.First+ref.Vertex], nil
}
