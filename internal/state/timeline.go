package state

import "MotionBoard/internal/logging"

// TimelineState is the playback state of a Timeline.
type TimelineState uint8

const (
	Idle TimelineState = iota
	Drawing
	Playing
)

func (s TimelineState) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case Playing:
		return "playing"
	}
	return "idle"
}

// Timeline is the shared clock strokes are placed on. Position always stays
// within [0, duration].
type Timeline struct {
	duration         float32
	position         float32
	playing          bool
	drawing          bool
	draggingPlayhead bool
}

// NewTimeline returns an idle timeline. A non-positive duration is replaced by
// one second.
func NewTimeline(duration, position float32) *Timeline {
	if duration <= 0 {
		duration = 1
	}
	tl := &Timeline{duration: duration}
	tl.SetPosition(position)
	return tl
}

func (tl *Timeline) Duration() float32      { return tl.duration }
func (tl *Timeline) Position() float32      { return tl.position }
func (tl *Timeline) Playing() bool          { return tl.playing }
func (tl *Timeline) Drawing() bool          { return tl.drawing }
func (tl *Timeline) DraggingPlayhead() bool { return tl.draggingPlayhead }

// State reports Drawing while a stroke edit is in progress, otherwise Playing
// or Idle.
func (tl *Timeline) State() TimelineState {
	switch {
	case tl.drawing:
		return Drawing
	case tl.playing:
		return Playing
	}
	return Idle
}

// SetPosition clamps p into [0, duration], stores it and returns the stored
// value.
func (tl *Timeline) SetPosition(p float32) float32 {
	tl.position = min(max(p, 0), tl.duration)
	return tl.position
}

// SetDuration changes the timeline length. Non-positive values are ignored.
// The position is re-clamped.
func (tl *Timeline) SetDuration(d float32) {
	if d <= 0 {
		return
	}
	tl.duration = d
	tl.SetPosition(tl.position)
}

// Tick advances the position by dt while drawing or playing, unless the
// playhead is being dragged. Running past the end resets to 0.
func (tl *Timeline) Tick(dt float32) {
	if (!tl.drawing && !tl.playing) || tl.draggingPlayhead {
		return
	}
	tl.position += dt
	if tl.position > tl.duration {
		tl.position = 0
	}
}

func (tl *Timeline) SetPlaying(playing bool) {
	if tl.playing != playing {
		logging.For("timeline").Debug("playback changed", "playing", playing, "position", tl.position)
	}
	tl.playing = playing
}

// TogglePlaying flips playback and returns the new state.
func (tl *Timeline) TogglePlaying() bool {
	tl.SetPlaying(!tl.playing)
	return tl.playing
}

func (tl *Timeline) SetDrawing(drawing bool) { tl.drawing = drawing }

// BeginPlayheadDrag freezes automatic advancement until EndPlayheadDrag.
func (tl *Timeline) BeginPlayheadDrag() { tl.draggingPlayhead = true }

// DragPlayhead moves the playhead to p, clamped.
func (tl *Timeline) DragPlayhead(p float32) float32 {
	return tl.SetPosition(p)
}

func (tl *Timeline) EndPlayheadDrag() { tl.draggingPlayhead = false }
