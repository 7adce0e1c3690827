package state

import (
	"testing"

	"MotionBoard/internal/geom"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(x, y float32) geom.Vertex {
	return geom.NewVertex(geom.Pt(x, y), 20)
}

func TestNewStrokeAndAppend(t *testing.T) {
	st := NewStore(DefaultLimits)
	s, err := st.NewStroke(2.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.First)
	assert.Equal(t, 0, s.Count)

	for i := range 3 {
		idx, err := st.AppendVertex(s.ID, vertexAt(float32(i*10), 0))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	got, ok := st.Stroke(s.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 2, got.Segments())
	assert.Equal(t, float32(2.5), got.Start)
	assert.Equal(t, float32(3.5), got.End())
	assert.Equal(t, 3, st.VertexLen())

	vs := st.Vertices(got)
	require.Len(t, vs, 3)
	assert.Equal(t, geom.Pt(20, 0), vs[2].Anchor)

	seg := st.Segment(got, 1)
	assert.Equal(t, geom.Pt(10, 0), seg.A)
	assert.Equal(t, geom.Pt(30, 0), seg.H1)
	assert.Equal(t, geom.Pt(0, 0), seg.H2)
	assert.Equal(t, geom.Pt(20, 0), seg.B)
}

func TestStrokeRangesStayContiguous(t *testing.T) {
	st := NewStore(DefaultLimits)
	a, _ := st.NewStroke(0, 1)
	_, _ = st.AppendVertex(a.ID, vertexAt(0, 0))
	_, _ = st.AppendVertex(a.ID, vertexAt(1, 0))

	b, _ := st.NewStroke(0, 1)
	assert.Equal(t, 2, b.First)
	_, err := st.AppendVertex(b.ID, vertexAt(5, 5))
	require.NoError(t, err)

	_, err = st.AppendVertex(a.ID, vertexAt(2, 0))
	require.ErrorIs(t, err, ErrStrokeSealed)

	a, _ = st.Stroke(a.ID)
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 3, st.VertexLen())
}

func TestCapacityViolationsLeaveStoreUnchanged(t *testing.T) {
	t.Run("stroke vertices", func(t *testing.T) {
		st := NewStore(Limits{Vertices: 10, StrokeVertices: 2, Strokes: 4})
		s, _ := st.NewStroke(0, 1)
		_, _ = st.AppendVertex(s.ID, vertexAt(0, 0))
		_, _ = st.AppendVertex(s.ID, vertexAt(1, 0))

		_, err := st.AppendVertex(s.ID, vertexAt(2, 0))
		require.ErrorIs(t, err, ErrStrokeVertexCapacity)
		s, _ = st.Stroke(s.ID)
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, 2, st.VertexLen())
	})

	t.Run("arena", func(t *testing.T) {
		st := NewStore(Limits{Vertices: 3, StrokeVertices: 8, Strokes: 4})
		a, _ := st.NewStroke(0, 1)
		_, _ = st.AppendVertex(a.ID, vertexAt(0, 0))
		_, _ = st.AppendVertex(a.ID, vertexAt(1, 0))
		b, _ := st.NewStroke(0, 1)
		_, _ = st.AppendVertex(b.ID, vertexAt(2, 0))

		_, err := st.AppendVertex(b.ID, vertexAt(3, 0))
		require.ErrorIs(t, err, ErrVertexCapacity)
		assert.Equal(t, 3, st.VertexLen())
	})

	t.Run("strokes", func(t *testing.T) {
		st := NewStore(Limits{Vertices: 10, StrokeVertices: 8, Strokes: 1})
		_, err := st.NewStroke(0, 1)
		require.NoError(t, err)
		_, err = st.NewStroke(0, 1)
		require.ErrorIs(t, err, ErrStrokeCapacity)
		assert.Equal(t, 1, st.Len())
	})
}

func TestUnknownStroke(t *testing.T) {
	st := NewStore(DefaultLimits)
	_, err := st.AppendVertex(uuid.New(), vertexAt(0, 0))
	require.ErrorIs(t, err, ErrUnknownStroke)
	require.ErrorIs(t, st.Retime(uuid.New(), 0, 1), ErrUnknownStroke)
	_, ok := st.Stroke(uuid.New())
	assert.False(t, ok)
}

func TestControlRefs(t *testing.T) {
	st := NewStore(DefaultLimits)
	s, _ := st.NewStroke(0, 1)
	_, _ = st.AppendVertex(s.ID, vertexAt(100, 100))

	tests := []struct {
		part Part
		want geom.Point
	}{
		{PartAnchor, geom.Pt(100, 100)},
		{PartHandleIn, geom.Pt(80, 100)},
		{PartHandleOut, geom.Pt(120, 100)},
	}
	for _, tt := range tests {
		p, err := st.Control(ControlRef{Stroke: s.ID, Vertex: 0, Part: tt.part})
		require.NoError(t, err)
		assert.Equal(t, tt.want, p, tt.part.String())
	}

	ref := ControlRef{Stroke: s.ID, Vertex: 0, Part: PartHandleOut}
	require.NoError(t, st.SetControl(ref, geom.Pt(1, 2)))
	s, _ = st.Stroke(s.ID)
	assert.Equal(t, geom.Pt(1, 2), st.Vertices(s)[0].Handles[geom.HandleOut])

	_, err := st.Control(ControlRef{Stroke: s.ID, Vertex: 1})
	require.ErrorIs(t, err, ErrUnknownControl)
	require.ErrorIs(t, st.SetControl(ControlRef{Stroke: s.ID, Vertex: -1}, geom.Pt(0, 0)), ErrUnknownControl)
}

func TestJournal(t *testing.T) {
	st := NewStore(DefaultLimits)
	var ops []Op
	st.OnOp = func(op Op) { ops = append(ops, op) }

	s, _ := st.NewStroke(1, 2)
	_, _ = st.AppendVertex(s.ID, vertexAt(3, 4))
	_ = st.SetControl(ControlRef{Stroke: s.ID, Part: PartAnchor}, geom.Pt(5, 6))
	_ = st.Retime(s.ID, 0.5, 3)
	_, _ = st.AppendVertex(uuid.New(), vertexAt(0, 0))

	require.Len(t, ops, 4)
	assert.Equal(t, []OpType{OpInsertStroke, OpAppendVertex, OpMoveControl, OpRetimeStroke},
		[]OpType{ops[0].Type, ops[1].Type, ops[2].Type, ops[3].Type})
	for i, op := range ops {
		assert.Equal(t, uint64(i+1), op.Seq)
		assert.Equal(t, s.ID, op.Stroke)
	}
	assert.Equal(t, geom.Pt(3, 4), ops[1].Point)
	assert.Equal(t, geom.Pt(5, 6), ops[2].Point)
	assert.Equal(t, float32(3), ops[3].Length)
}

func TestOpLogValue(t *testing.T) {
	attrs := func(op Op) map[string]string {
		out := make(map[string]string)
		for _, a := range op.LogValue().Group() {
			out[a.Key] = a.Value.String()
		}
		return out
	}

	move := attrs(Op{Type: OpMoveControl, Seq: 3, Vertex: 1, Part: PartHandleOut, Point: geom.Pt(5, 6)})
	assert.Equal(t, "move_control", move["type"])
	assert.Equal(t, "3", move["seq"])
	assert.Equal(t, "handle_out", move["part"])
	assert.Equal(t, "1", move["vertex"])
	assert.Equal(t, "5", move["x"])
	assert.NotContains(t, move, "start")

	retime := attrs(Op{Type: OpRetimeStroke, Start: 0.5, Length: 3})
	assert.Equal(t, "0.5", retime["start"])
	assert.Equal(t, "3", retime["duration"])
	assert.NotContains(t, retime, "part")
}

func TestStrokesCopy(t *testing.T) {
	st := NewStore(DefaultLimits)
	a, _ := st.NewStroke(0, 1)
	b, _ := st.NewStroke(1, 1)

	all := st.Strokes()
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[1].ID)

	all[0].Start = 99
	got, _ := st.Stroke(a.ID)
	assert.Equal(t, float32(0), got.Start)
}

func TestStrokeCovers(t *testing.T) {
	s := Stroke{Count: 2, Start: 1, Duration: 2}
	assert.True(t, s.Covers(1))
	assert.True(t, s.Covers(3))
	assert.False(t, s.Covers(0.99))
	assert.False(t, s.Covers(3.01))
	assert.False(t, Stroke{Start: 1, Duration: 2}.Covers(2), "no vertices")
}
