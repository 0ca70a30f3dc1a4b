package viewport

import "github.com/five82/layerterm/internal/geometry"

// BringIntoView scrolls id and then each ancestor just enough that content
// cell (col, row) of id is visible on screen.
func (s *Stack) BringIntoView(id ID, col, row int) {
	seen := make(map[ID]bool)
	for id != NoID && !seen[id] {
		v, ok := s.viewports[id]
		if !ok {
			return
		}
		seen[id] = true

		v.FirstVisibleColumn = geometry.SelectValue(v.FirstVisibleColumn, col, v.Width)
		v.FirstVisibleRow = geometry.SelectValue(v.FirstVisibleRow, row, v.Height)

		col = v.Left + col - v.FirstVisibleColumn
		row = v.Top + row - v.FirstVisibleRow
		id = s.tree.Parent(id)
	}
}

// BringRectIntoView scrolls id and each ancestor so that r, given in id's
// content coordinates, is visible. A rectangle larger than a viewport is
// reduced around its key point first, so the key point is what is guaranteed
// to end up on screen.
func (s *Stack) BringRectIntoView(id ID, r geometry.Rectangle) {
	if r.IsDegenerate() {
		return
	}
	seen := make(map[ID]bool)
	for id != NoID && !seen[id] {
		v, ok := s.viewports[id]
		if !ok {
			return
		}
		seen[id] = true

		reducer := geometry.Reducer{PreferCol: v.FirstVisibleColumn, PreferRow: v.FirstVisibleRow}
		r = reducer.Reduce(r, v.Width, v.Height)

		v.FirstVisibleColumn = scrollAxis(v.FirstVisibleColumn, r.Left, r.Width, v.Width)
		v.FirstVisibleRow = scrollAxis(v.FirstVisibleRow, r.Top, r.Height, v.Height)

		r = r.Translate(v.Left-v.FirstVisibleColumn, v.Top-v.FirstVisibleRow)
		id = s.tree.Parent(id)
	}
}

// scrollAxis keeps origin when [start, start+length) is already inside
// [origin, origin+size); otherwise it brings in the edge that is off screen.
func scrollAxis(origin, start, length, size int) int {
	if size <= 0 {
		return origin
	}
	if start >= origin && start+length <= origin+size {
		return origin
	}
	if start < origin {
		return geometry.SelectValue(origin, start, size)
	}
	return geometry.SelectValue(origin, start+length-1, size)
}
