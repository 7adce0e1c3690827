// Package editor turns pointer input into stroke store edits. A Session holds
// everything the edit and timeline controls share: the store, the timeline,
// the input mode, the selected stroke and the active drag.
package editor

import (
	"errors"
	"fmt"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/state"

	"github.com/google/uuid"
)

// Mode is the active pointer tool.
type Mode uint8

const (
	ModeDraw Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	if m == ModeSelect {
		return "select"
	}
	return "draw"
}

// Options tune editing.
type Options struct {
	SelectTolerance float32 // max pointer distance for a hit
	HandleOffset    float32 // horizontal offset of new handles from their anchor
	StrokeDuration  float32 // timeline duration given to new strokes
}

var DefaultOptions = Options{SelectTolerance: 5, HandleOffset: 20, StrokeDuration: 1}

// minStrokeDuration keeps retimed strokes from collapsing or inverting.
const minStrokeDuration = 0.01

// ErrNoSelection is returned by operations that act on the selected stroke
// when there is none.
var ErrNoSelection = errors.New("no stroke selected")

// Session is the editing context. It is not safe for concurrent use; drive it
// from a single goroutine.
type Session struct {
	store    *state.Store
	timeline *state.Timeline
	opts     Options
	mode     Mode

	selected *uuid.UUID
	drag     *state.ControlRef
}

// NewSession starts in draw mode with nothing selected.
func NewSession(store *state.Store, timeline *state.Timeline, opts Options) *Session {
	return &Session{store: store, timeline: timeline, opts: opts}
}

func (s *Session) Store() *state.Store       { return s.store }
func (s *Session) Timeline() *state.Timeline { return s.timeline }
func (s *Session) Mode() Mode                { return s.mode }

// SetMode switches tools. Any drag in progress is dropped.
func (s *Session) SetMode(m Mode) {
	if m != s.mode {
		logging.For("editor").Debug("mode changed", "mode", m)
	}
	s.mode = m
	s.drag = nil
}

// Selected returns the selected stroke.
func (s *Session) Selected() (state.Stroke, bool) {
	if s.selected == nil {
		return state.Stroke{}, false
	}
	return s.store.Stroke(*s.selected)
}

// Select makes id the selected stroke.
func (s *Session) Select(id uuid.UUID) error {
	if _, ok := s.store.Stroke(id); !ok {
		return fmt.Errorf("select %s: %w", id, state.ErrUnknownStroke)
	}
	s.selected = &id
	s.drag = nil
	return nil
}

// Deselect clears the selection, so the next draw starts a new stroke.
func (s *Session) Deselect() {
	s.selected = nil
	s.drag = nil
}

// Dragging returns the control point bound to the pointer, if any.
func (s *Session) Dragging() (state.ControlRef, bool) {
	if s.drag == nil {
		return state.ControlRef{}, false
	}
	return *s.drag, true
}

// IsEditing reports whether a drag or a draw is in progress.
func (s *Session) IsEditing() bool {
	return s.drag != nil || s.timeline.Drawing()
}

// Tick advances the timeline by dt seconds.
func (s *Session) Tick(dt float32) {
	s.timeline.Tick(dt)
}

// PointerDown handles a primary button press at p. In select mode it binds a
// drag to a control point of the selected stroke, or failing that picks the
// stroke under p; in draw mode it appends a vertex to the selected stroke,
// creating one when nothing is selected.
func (s *Session) PointerDown(p geom.Point, at float32) error {
	switch s.mode {
	case ModeSelect:
		if !s.grab(p) {
			s.SelectAt(p)
		}
		return nil
	case ModeDraw:
		return s.draw(p, at)
	}
	return nil
}

// PointerMove moves the dragged control point, if any, to p.
func (s *Session) PointerMove(p geom.Point, _ float32) {
	if s.drag == nil {
		return
	}
	if err := s.store.SetControl(*s.drag, p); err != nil {
		logging.For("editor").Warn("drag dropped", "err", err)
		s.drag = nil
	}
}

// PointerUp ends any drag and any draw in progress.
func (s *Session) PointerUp() {
	s.drag = nil
	s.timeline.SetDrawing(false)
}

func (s *Session) grab(p geom.Point) bool {
	sel, ok := s.Selected()
	if !ok {
		return false
	}

	tol := s.opts.SelectTolerance
	for i, v := range s.store.Vertices(sel) {
		var part state.Part
		switch {
		case geom.Dist(p, v.Anchor) <= tol:
			part = state.PartAnchor
		case geom.Dist(p, v.Handles[geom.HandleIn]) <= tol:
			part = state.PartHandleIn
		case geom.Dist(p, v.Handles[geom.HandleOut]) <= tol:
			part = state.PartHandleOut
		default:
			continue
		}

		s.drag = &state.ControlRef{Stroke: sel.ID, Vertex: i, Part: part}
		logging.For("editor").Debug("drag started", "stroke", sel.ID, "vertex", i, "part", part)
		return true
	}
	return false
}

func (s *Session) draw(p geom.Point, at float32) error {
	sel, ok := s.Selected()
	if !ok {
		created, err := s.store.NewStroke(s.timeline.Position(), s.opts.StrokeDuration)
		if err != nil {
			return err
		}
		s.selected = &created.ID
		sel = created
	}

	if _, err := s.store.AppendVertex(sel.ID, geom.NewVertex(p, s.opts.HandleOffset)); err != nil {
		logging.For("editor").Warn("point rejected", "stroke", sel.ID, "err", err)
		return err
	}
	logging.For("editor").Debug("point added", "stroke", sel.ID, "x", p.X, "y", p.Y, "at", at)
	s.timeline.SetDrawing(true)
	return nil
}
