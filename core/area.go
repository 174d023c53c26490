package core

// Point is a position in cell space, fractional values are allowed during animation
type Point struct {
	X, Y float64
}

// Size holds width and height in cells
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle, origin at top-left
type Rect struct {
	X, Y float64
	W, H float64
}

// MinX returns the left edge
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the top edge
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MidX returns the horizontal center
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical center
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Min returns the leading edge along the orientation's axis
func (r Rect) Min(o Orientation) float64 {
	if o == Horizontal {
		return r.X
	}
	return r.Y
}

// Max returns the trailing edge along the orientation's axis
func (r Rect) Max(o Orientation) float64 {
	if o == Horizontal {
		return r.X + r.W
	}
	return r.Y + r.H
}

// Extent returns the rectangle length along the orientation's axis
func (r Rect) Extent(o Orientation) float64 {
	if o == Horizontal {
		return r.W
	}
	return r.H
}

// Offset returns the rectangle moved by dx, dy
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlapping area, zero-sized if disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Overlaps reports whether r and o share any area
func (r Rect) Overlaps(o Rect) bool {
	return o.X < r.MaxX() && o.MaxX() > r.X && o.Y < r.MaxY() && o.MaxY() > r.Y
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Insets holds padding or margin on each side
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Start returns the inset before content along the orientation's axis
func (i Insets) Start(o Orientation) float64 {
	if o == Horizontal {
		return i.Left
	}
	return i.Top
}

// End returns the inset after content along the orientation's axis
func (i Insets) End(o Orientation) float64 {
	if o == Horizontal {
		return i.Right
	}
	return i.Bottom
}
