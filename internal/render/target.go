// Package render turns the stroke store into logical draw calls: the animated
// brush reveal and the editing guides. Backends implement Target.
package render

import (
	"image"
	"image/color"

	"MotionBoard/internal/geom"
)

// Target receives draw requests. It owns whatever GPU, canvas or document
// resources are needed to honour them.
type Target interface {
	// LineStrip draws connected line pieces through points in order.
	LineStrip(points []geom.Point, c color.Color, width float32)
	// Point draws a round marker of the given diameter.
	Point(at geom.Point, size float32, c color.Color)
	// Stamp draws brush centred on at, scaled uniformly by scale.
	Stamp(at geom.Point, scale, rotation float32, brush image.Image)
}

// Style holds the guide colours and sizes.
type Style struct {
	Curve         color.Color
	CurveWidth    float32
	Handle        color.Color
	Marker        color.Color
	MarkerSize    float32
	Highlight     color.Color
	HighlightSize float32
}

// DefaultStyle draws red guides with white control point highlights.
var DefaultStyle = Style{
	Curve:         color.NRGBA{R: 255, A: 255},
	CurveWidth:    1,
	Handle:        color.NRGBA{R: 255, A: 255},
	Marker:        color.NRGBA{R: 255, A: 255},
	MarkerSize:    5,
	Highlight:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	HighlightSize: 3,
}
