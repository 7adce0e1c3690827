package state

import (
	"log/slog"

	"MotionBoard/internal/geom"

	"github.com/google/uuid"
)

// Stroke is one animated curve. Its vertices live in the store's arena at
// [First, First+Count); Start and Duration place it on the shared timeline.
type Stroke struct {
	ID       uuid.UUID
	First    int
	Count    int
	Start    float32
	Duration float32
}

// End returns the timeline position at which the stroke is fully drawn.
func (s Stroke) End() float32 { return s.Start + s.Duration }

// Segments returns how many cubic segments the stroke's vertices form.
func (s Stroke) Segments() int {
	if s.Count < 2 {
		return 0
	}
	return s.Count - 1
}

// Covers reports whether position falls inside the stroke's time window.
func (s Stroke) Covers(position float32) bool {
	return s.Count > 0 && s.Start <= position && position <= s.End()
}

// Part names one of the three points of a vertex.
type Part uint8

const (
	PartAnchor Part = iota
	PartHandleIn
	PartHandleOut
)

func (p Part) String() string {
	switch p {
	case PartAnchor:
		return "anchor"
	case PartHandleIn:
		return "handle_in"
	case PartHandleOut:
		return "handle_out"
	}
	return "unknown"
}

// ControlRef addresses a single control point by stroke, vertex index within
// the stroke and part. It is resolved through the Store on every access.
type ControlRef struct {
	Stroke uuid.UUID
	Vertex int
	Part   Part
}

func (p Part) of(v *geom.Vertex) *geom.Point {
	switch p {
	case PartHandleIn:
		return &v.Handles[geom.HandleIn]
	case PartHandleOut:
		return &v.Handles[geom.HandleOut]
	}
	return &v.Anchor
}

type OpType string

const (
	OpInsertStroke OpType = "insert_stroke"
	OpAppendVertex OpType = "append_vertex"
	OpMoveControl  OpType = "move_control"
	OpRetimeStroke OpType = "retime_stroke"
)

// Op describes one applied store mutation.
type Op struct {
	Type   OpType
	Seq    uint64
	Stroke uuid.UUID
	Vertex int        // append_vertex, move_control
	Part   Part       // move_control
	Point  geom.Point // append_vertex, move_control
	Start  float32    // insert_stroke, retime_stroke
	Length float32    // insert_stroke, retime_stroke: the new duration
}

// LogValue renders the fields that apply to the op's type.
func (op Op) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", string(op.Type)),
		slog.Uint64("seq", op.Seq),
		slog.String("stroke", op.Stroke.String()),
	}
	switch op.Type {
	case OpAppendVertex:
		attrs = append(attrs, slog.Int("vertex", op.Vertex),
			slog.Float64("x", float64(op.Point.X)), slog.Float64("y", float64(op.Point.Y)))
	case OpMoveControl:
		attrs = append(attrs, slog.Int("vertex", op.Vertex), slog.String("part", op.Part.String()),
			slog.Float64("x", float64(op.Point.X)), slog.Float64("y", float64(op.Point.Y)))
	case OpInsertStroke, OpRetimeStroke:
		attrs = append(attrs, slog.Float64("start", float64(op.Start)), slog.Float64("duration", float64(op.Length)))
	}
	return slog.GroupValue(attrs...)
}
