package ui

import (
	"image"
	"image/color"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// canvasTarget collects render calls as fyne canvas objects. Board
// coordinates are shifted by the pan offset.
type canvasTarget struct {
	objects    []fyne.CanvasObject
	panX, panY float32
	brushPx    int
	brushes    map[image.Image]image.Image
}

func newCanvasTarget(brushPx int) *canvasTarget {
	return &canvasTarget{brushPx: brushPx, brushes: make(map[image.Image]image.Image)}
}

func (t *canvasTarget) reset(panX, panY float32) {
	t.objects = t.objects[:0]
	t.panX, t.panY = panX, panY
}

func (t *canvasTarget) pos(p geom.Point) fyne.Position {
	return fyne.NewPos(p.X+t.panX, p.Y+t.panY)
}

func (t *canvasTarget) LineStrip(points []geom.Point, c color.Color, width float32) {
	for i := 1; i < len(points); i++ {
		line := canvas.NewLine(c)
		line.StrokeWidth = width
		line.Position1 = t.pos(points[i-1])
		line.Position2 = t.pos(points[i])
		t.objects = append(t.objects, line)
	}
}

func (t *canvasTarget) Point(at geom.Point, size float32, c color.Color) {
	dot := canvas.NewCircle(c)
	dot.Resize(fyne.NewSquareSize(size))
	dot.Move(t.pos(geom.Pt(at.X-size/2, at.Y-size/2)))
	t.objects = append(t.objects, dot)
}

// Stamp ignores rotation: canvas images cannot be rotated.
func (t *canvasTarget) Stamp(at geom.Point, scale, _ float32, brush image.Image) {
	if brush == nil {
		return
	}
	scaled, ok := t.brushes[brush]
	if !ok {
		scaled = render.ScaleBrush(brush, t.brushPx)
		t.brushes[brush] = scaled
	}

	img := canvas.NewImageFromImage(scaled)
	img.FillMode = canvas.ImageFillStretch
	img.Resize(fyne.NewSquareSize(scale))
	img.Move(t.pos(geom.Pt(at.X-scale/2, at.Y-scale/2)))
	t.objects = append(t.objects, img)
}
