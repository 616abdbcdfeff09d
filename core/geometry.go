package core

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of two rectangles (possibly empty).
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Size is a 2D extent.
type Size struct {
	W, H int
}

// Insets are edge offsets (top, left, bottom, right).
type Insets struct {
	Top, Left, Bottom, Right int
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}
