package ui

import (
	"image/color"
	"time"

	"MotionBoard/internal/editor"
	"MotionBoard/internal/geom"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/render"
	"MotionBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the animated strokes and feeds pointer input to the
// editing session.
type BoardWidget struct {
	widget.BaseWidget
	session    *editor.Session
	renderer   *render.Renderer
	panX, panY float32
	started    time.Time

	changed      bool // the store applied an op since the last Sync
	lastPosition float32

	OnError  func(err error) // a pointer edit was rejected
	OnChange func()          // the selection or the strokes changed
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget installs itself as the store's op hook.
func NewBoardWidget(session *editor.Session, r *render.Renderer) *BoardWidget {
	b := &BoardWidget{
		session:  session,
		renderer: r,
		started:  time.Now(),
	}
	session.Store().OnOp = b.applied
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) applied(op state.Op) {
	logging.For("ui").Debug("op applied", "op", op)
	b.changed = true
}

// toBoard converts a widget position into board coordinates.
func (b *BoardWidget) toBoard(p fyne.Position) geom.Point {
	return geom.Pt(p.X-b.panX, p.Y-b.panY)
}

func (b *BoardWidget) now() float32 {
	return float32(time.Since(b.started).Seconds())
}

// Sync refreshes the board when the strokes or the playhead moved since the
// last frame.
func (b *BoardWidget) Sync() {
	pos := b.session.Timeline().Position()
	if !b.changed && pos == b.lastPosition {
		return
	}
	if b.changed && b.OnChange != nil {
		b.OnChange()
	}
	b.changed, b.lastPosition = false, pos
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if err := b.session.PointerDown(b.toBoard(e.Position), b.now()); err != nil {
		logging.For("ui").Warn("pointer down rejected", "err", err)
		if b.OnError != nil {
			b.OnError(err)
		}
	}
	if b.OnChange != nil {
		b.OnChange()
	}
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.session.PointerUp()
	b.Refresh()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if _, dragging := b.session.Dragging(); dragging {
		b.session.PointerMove(b.toBoard(e.Position), b.now())
		b.Refresh()
	}
}

// Dragged moves the bound control point, or pans when nothing is being
// edited.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.session.IsEditing() {
		b.session.PointerMove(b.toBoard(e.Position), b.now())
	} else {
		b.panX += e.Dragged.DX
		b.panY += e.Dragged.DY
	}
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	b.session.PointerUp()
	b.Refresh()
}

// DoubleTapped selects the stroke under the pointer in select mode. In draw
// mode the presses of a double click have already added points.
func (b *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	if b.session.Mode() != editor.ModeSelect {
		return
	}
	if b.session.SelectAt(b.toBoard(e.Position)) {
		if b.OnChange != nil {
			b.OnChange()
		}
		b.Refresh()
	}
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		target:     newCanvasTarget(int(b.renderer.Scale)),
	}
	r.Refresh()
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	target     *canvasTarget
	objects    []fyne.CanvasObject
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Refresh draws one frame at the current playhead.
func (r *boardRenderer) Refresh() {
	b := r.board
	r.target.reset(b.panX, b.panY)
	b.renderer.Frame(r.target, b.session.Store(), b.session.Timeline().Position())

	r.objects = append(r.objects[:0], r.background)
	r.objects = append(r.objects, r.target.objects...)
	canvas.Refresh(b)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
