package ui

import (
	"fmt"

	"MotionBoard/internal/editor"
	"MotionBoard/internal/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const sliderStep = 0.01

// timelineBar holds the playhead slider, the play button and the start/end
// sliders of the selected stroke.
type timelineBar struct {
	widget.BaseWidget
	session *editor.Session

	play     *widget.Button
	playhead *widget.Slider
	clock    *widget.Label
	start    *widget.Slider
	end      *widget.Slider
	handles  *fyne.Container

	// syncing is set while the bar writes slider values itself, so the
	// OnChanged callbacks do not feed them back into the session.
	syncing bool
}

func newTimelineBar(session *editor.Session) *timelineBar {
	duration := float64(session.Timeline().Duration())
	b := &timelineBar{
		session:  session,
		playhead: widget.NewSlider(0, duration),
		start:    widget.NewSlider(0, duration),
		end:      widget.NewSlider(0, duration),
		clock:    widget.NewLabel(""),
	}
	for _, s := range []*widget.Slider{b.playhead, b.start, b.end} {
		s.Step = sliderStep
	}

	b.play = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		session.Timeline().TogglePlaying()
		b.SyncPlaying()
	})

	b.playhead.OnChanged = func(v float64) {
		if b.syncing {
			return
		}
		tl := session.Timeline()
		tl.BeginPlayheadDrag()
		tl.DragPlayhead(float32(v))
		b.updateClock()
	}
	b.playhead.OnChangeEnded = func(float64) {
		session.Timeline().EndPlayheadDrag()
	}

	b.start.OnChanged = func(v float64) {
		if b.syncing {
			return
		}
		if err := session.SetSelectedStart(float32(v)); err != nil {
			logging.For("ui").Warn("retime start", "err", err)
		}
		b.SyncSelection()
	}
	b.end.OnChanged = func(v float64) {
		if b.syncing {
			return
		}
		if err := session.SetSelectedEnd(float32(v)); err != nil {
			logging.For("ui").Warn("retime end", "err", err)
		}
		b.SyncSelection()
	}

	b.handles = container.NewGridWithColumns(4,
		widget.NewLabel("Start"), b.start,
		widget.NewLabel("End"), b.end,
	)
	b.ExtendBaseWidget(b)
	b.SyncPosition()
	b.SyncSelection()
	return b
}

func (b *timelineBar) updateClock() {
	tl := b.session.Timeline()
	b.clock.SetText(fmt.Sprintf("%.2fs / %.2fs", tl.Position(), tl.Duration()))
}

// SyncPosition moves the playhead slider to the timeline position unless the
// user is dragging it.
func (b *timelineBar) SyncPosition() {
	tl := b.session.Timeline()
	if tl.DraggingPlayhead() {
		return
	}
	if float32(b.playhead.Value) != tl.Position() {
		b.syncing = true
		b.playhead.SetValue(float64(tl.Position()))
		b.syncing = false
		b.updateClock()
	}
}

func (b *timelineBar) SyncPlaying() {
	if b.session.Timeline().Playing() {
		b.play.SetIcon(theme.MediaPauseIcon())
	} else {
		b.play.SetIcon(theme.MediaPlayIcon())
	}
}

// SyncSelection shows the time window of the selected stroke, or hides the
// handles when nothing is selected.
func (b *timelineBar) SyncSelection() {
	s, ok := b.session.Selected()
	if !ok {
		b.handles.Hide()
		return
	}
	b.syncing = true
	b.start.SetValue(float64(s.Start))
	b.end.SetValue(float64(s.End()))
	b.syncing = false
	b.handles.Show()
}

func (b *timelineBar) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, container.NewHBox(b.play, b.clock), nil, b.playhead)
	return widget.NewSimpleRenderer(container.NewVBox(row, b.handles, layout.NewSpacer()))
}
