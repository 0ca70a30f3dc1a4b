package geometry

import "fmt"

// Rectangle is an immutable cell area with a key point that must stay visible.
type Rectangle struct {
	Left   int
	Top    int
	Width  int
	Height int
	KeyCol int
	KeyRow int
}

// NewRectangle returns a rectangle whose key point is its top-left cell.
func NewRectangle(left, top, width, height int) Rectangle {
	return Rectangle{Left: left, Top: top, Width: width, Height: height, KeyCol: left, KeyRow: top}
}

// Point returns a 1x1 rectangle at (col, row).
func Point(col, row int) Rectangle {
	return NewRectangle(col, row, 1, 1)
}

// Right returns the first column past the rectangle.
func (r Rectangle) Right() int { return r.Left + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rectangle) Bottom() int { return r.Top + r.Height }

// IsDegenerate reports whether the rectangle covers no cells.
func (r Rectangle) IsDegenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (col, row) lies inside the rectangle.
func (r Rectangle) Contains(col, row int) bool {
	return col >= r.Left && col < r.Right() && row >= r.Top && row < r.Bottom()
}

// WithKey returns a copy with the key point moved to (col, row).
func (r Rectangle) WithKey(col, row int) Rectangle {
	r.KeyCol = col
	r.KeyRow = row
	return r
}

// Translate moves the rectangle and its key point by (dx, dy).
func (r Rectangle) Translate(dx, dy int) Rectangle {
	r.Left += dx
	r.Top += dy
	r.KeyCol += dx
	r.KeyRow += dy
	return r
}

// Intersect returns the overlap of r and other. The key point of r is clamped
// into the result. A degenerate result has zero width or height.
func (r Rectangle) Intersect(other Rectangle) Rectangle {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	out := Rectangle{Left: left, Top: top, Width: max(right-left, 0), Height: max(bottom-top, 0)}
	out.KeyCol = clamp(r.KeyCol, out.Left, out.Right()-1)
	out.KeyRow = clamp(r.KeyRow, out.Top, out.Bottom()-1)
	return out
}

// ClampKey returns a copy with the key point moved inside the rectangle.
func (r Rectangle) ClampKey() Rectangle {
	if r.IsDegenerate() {
		return r
	}
	r.KeyCol = clamp(r.KeyCol, r.Left, r.Right()-1)
	r.KeyRow = clamp(r.KeyRow, r.Top, r.Bottom()-1)
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d key %d,%d)", r.Left, r.Top, r.Width, r.Height, r.KeyCol, r.KeyRow)
}

// SelectValue returns a window origin such that target lies in
// [origin, origin+size). The current origin is kept when it already works;
// otherwise the window snaps to the nearer edge. The result is never negative.
func SelectValue(current, target, size int) int {
	if size <= 0 {
		return current
	}
	switch {
	case target >= current && target < current+size:
		return current
	case target < current:
		return max(target, 0)
	default:
		return max(target-size+1, 0)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
