package core

import "math"

// Viewport maps world coordinates onto a grid of screen cells.
// Axes are scaled independently so the whole playfield always fits.
type Viewport struct {
	WorldW, WorldH float64
	CellsW, CellsH int
	OffsetX        int // Cell column of the playfield's left edge
	OffsetY        int // Cell row of the playfield's top edge
}

// scale returns the cells-per-world-unit factors for both axes.
func (v Viewport) scale() (float64, float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.CellsW) / v.WorldW, float64(v.CellsH) / v.WorldH
}

// Project converts a world rectangle to the cells it covers.
// Any visible rectangle covers at least one cell; the result is clipped to the viewport.
func (v Viewport) Project(r RectF) Rect {
	sx, sy := v.scale()

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = Clamp(x0, 0, v.CellsW)
	x1 = Clamp(x1, 0, v.CellsW)
	y0 = Clamp(y0, 0, v.CellsH)
	y1 = Clamp(y1, 0, v.CellsH)

	return NewRect(x0+v.OffsetX, y0+v.OffsetY, x1-x0, y1-y0)
}
