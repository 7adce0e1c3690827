// Package export writes rendered frames to documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"MotionBoard/internal/geom"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/render"
	"MotionBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDFTarget draws render calls onto the current page of a gofpdf document.
// Board coordinates are shifted by Origin and used as points.
type PDFTarget struct {
	pdf     *gofpdf.Fpdf
	Origin  geom.Point
	brushes map[image.Image]string
}

// NewPDFTarget wraps pdf. The caller adds the page.
func NewPDFTarget(pdf *gofpdf.Fpdf, origin geom.Point) *PDFTarget {
	return &PDFTarget{pdf: pdf, Origin: origin, brushes: make(map[image.Image]string)}
}

func (t *PDFTarget) xy(p geom.Point) (float64, float64) {
	return float64(p.X - t.Origin.X), float64(p.Y - t.Origin.Y)
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func (t *PDFTarget) LineStrip(points []geom.Point, c color.Color, width float32) {
	t.pdf.SetDrawColor(rgb(c))
	t.pdf.SetLineWidth(float64(width))
	for i := 1; i < len(points); i++ {
		x1, y1 := t.xy(points[i-1])
		x2, y2 := t.xy(points[i])
		t.pdf.Line(x1, y1, x2, y2)
	}
}

func (t *PDFTarget) Point(at geom.Point, size float32, c color.Color) {
	t.pdf.SetFillColor(rgb(c))
	x, y := t.xy(at)
	t.pdf.Circle(x, y, float64(size)/2, "F")
}

// Stamp places the brush image centred on at. Each distinct brush is embedded
// once. Without a brush a black dot is drawn instead.
func (t *PDFTarget) Stamp(at geom.Point, scale, _ float32, brush image.Image) {
	x, y := t.xy(at)
	if brush == nil {
		t.pdf.SetFillColor(0, 0, 0)
		t.pdf.Circle(x, y, float64(scale)/2, "F")
		return
	}

	name, ok := t.brushes[brush]
	if !ok {
		var buf bytes.Buffer
		if err := png.Encode(&buf, brush); err != nil {
			t.pdf.SetError(fmt.Errorf("encode brush: %w", err))
			return
		}
		name = fmt.Sprintf("brush%d", len(t.brushes))
		t.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
		t.brushes[brush] = name
	}
	s := float64(scale)
	t.pdf.ImageOptions(name, x-s/2, y-s/2, s, s, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// Options control frame export.
type Options struct {
	Guides bool    // include curve previews, handles and markers
	Margin float32 // blank border around the strokes, in points
}

// blankPage is used when there is nothing to draw: A4 in points.
var blankPage = state.Area{Width: 595, Height: 842}

// WriteFrame renders the board at position into a single page PDF sized to
// fit every stroke.
func WriteFrame(w io.Writer, st *state.Store, r *render.Renderer, position float32, opts Options) error {
	page, ok := st.BoardBounds()
	if ok {
		page = page.Pad(opts.Margin + r.Scale)
	} else {
		page = blankPage
	}
	page.Width, page.Height = max(page.Width, 1), max(page.Height, 1)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(page.Width), Ht: float64(page.Height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	target := NewPDFTarget(pdf, geom.Pt(page.X, page.Y))
	var stamps int
	if opts.Guides {
		stamps = r.Frame(target, st, position)
	} else {
		stamps = r.Reveal(target, st, position)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	logging.For("export").Info("frame exported", "position", position, "strokes", st.Len(), "stamps", stamps)
	return nil
}

// WriteFrameFile is WriteFrame into a new file at path. On failure the file
// is removed.
func WriteFrameFile(path string, st *state.Store, r *render.Renderer, position float32, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteFrame(f, st, r, position, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
