package state

import "MotionBoard/internal/geom"

// Area is an axis-aligned rectangle on the board.
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether p lies inside a, edges included.
func (a Area) Contains(p geom.Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Union returns the smallest area covering both.
func (a Area) Union(b Area) Area {
	minX, minY := min(a.X, b.X), min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Pad grows the area by d on every side.
func (a Area) Pad(d float32) Area {
	return Area{X: a.X - d, Y: a.Y - d, Width: a.Width + 2*d, Height: a.Height + 2*d}
}

// Bounds returns the box around every anchor and handle of the vertices. A
// cubic never leaves its control polygon's hull, so the box covers the
// curve. No vertices gives the zero Area.
func Bounds(vertices []geom.Vertex) Area {
	if len(vertices) == 0 {
		return Area{}
	}

	minX, minY := vertices[0].Anchor.X, vertices[0].Anchor.Y
	maxX, maxY := minX, minY
	for _, v := range vertices {
		for _, p := range [3]geom.Point{v.Anchor, v.Handles[0], v.Handles[1]} {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoardBounds returns the union of the bounds of every stroke that has
// vertices, and false when there is none.
func (st *Store) BoardBounds() (Area, bool) {
	var out Area
	found := false
	for _, s := range st.strokes {
		if s.Count == 0 {
			continue
		}
		b := Bounds(st.Vertices(s))
		if found {
			out = out.Union(b)
		} else {
			out, found = b, true
		}
	}
	return out, found
}
