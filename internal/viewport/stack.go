package viewport

import (
	"strings"

	"github.com/five82/layerterm/internal/geometry"
	"github.com/five82/layerterm/internal/plate"
	"github.com/five82/layerterm/internal/style"
)

// Stack owns a set of viewports and the tree derived from them.
type Stack struct {
	next      ID
	order     []ID
	viewports map[ID]*Viewport
	tree      Tree

	cursorSet bool
	cursorID  ID
	cursorCol int
	cursorRow int
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	s := &Stack{viewports: make(map[ID]*Viewport)}
	s.tree = buildTree(nil, s.viewports)
	return s
}

// AddViewport stores v and returns its ID. Negative scroll origins are
// clamped to zero.
func (s *Stack) AddViewport(v Viewport) ID {
	s.next++
	id := s.next
	v.FirstVisibleColumn = max(v.FirstVisibleColumn, 0)
	v.FirstVisibleRow = max(v.FirstVisibleRow, 0)
	s.viewports[id] = &v
	s.order = append(s.order, id)
	s.rebuild()
	return id
}

// RemoveViewport deletes id. Children of the removed viewport keep their
// Container value and become roots.
func (s *Stack) RemoveViewport(id ID) bool {
	if _, ok := s.viewports[id]; !ok {
		return false
	}
	delete(s.viewports, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.cursorID == id {
		s.ClearCursor()
	}
	s.rebuild()
	return true
}

// Viewport returns a copy of the viewport stored under id.
func (s *Stack) Viewport(id ID) (Viewport, bool) {
	v, ok := s.viewports[id]
	if !ok {
		return Viewport{}, false
	}
	return *v, true
}

// IDs returns every viewport ID in insertion order.
func (s *Stack) IDs() []ID {
	return append([]ID(nil), s.order...)
}

// Tree returns the current tree.
func (s *Stack) Tree() Tree {
	return s.tree
}

// SetScroll moves the scroll origin of id. Negative values are clamped.
func (s *Stack) SetScroll(id ID, col, row int) {
	if v, ok := s.viewports[id]; ok {
		v.FirstVisibleColumn = max(col, 0)
		v.FirstVisibleRow = max(row, 0)
	}
}

// SetCursor asks Render to leave the terminal cursor at content cell
// (col, row) of viewport id, when that cell is visible.
func (s *Stack) SetCursor(id ID, col, row int) {
	s.cursorSet = true
	s.cursorID, s.cursorCol, s.cursorRow = id, col, row
}

// ClearCursor drops the cursor target.
func (s *Stack) ClearCursor() {
	s.cursorSet = false
	s.cursorID = NoID
}

func (s *Stack) rebuild() {
	s.tree = buildTree(s.order, s.viewports)
}

// Render paints every reachable viewport onto c.
func (s *Stack) Render(c Console) {
	w, h := c.Size()
	screen := geometry.NewRectangle(0, 0, w, h)
	for _, id := range s.tree.roots {
		s.renderNode(c, id, 0, 0, screen)
	}
	s.placeCursor(c, screen)
}

// renderNode paints id whose parent content origin sits at screen
// (originX, originY), limited to the visible region clip.
func (s *Stack) renderNode(c Console, id ID, originX, originY int, clip geometry.Rectangle) {
	v := s.viewports[id]
	rect := v.Rect().Translate(originX, originY)
	visible := rect.Intersect(clip)
	if visible.IsDegenerate() {
		return
	}
	if v.Plates != nil {
		s.paint(c, v, rect, visible)
	}

	childX := rect.Left - v.FirstVisibleColumn
	childY := rect.Top - v.FirstVisibleRow
	for child := s.tree.nodes[id].FirstChild; child != NoID; child = s.tree.nodes[child].NextSibling {
		s.renderNode(c, child, childX, childY, visible)
	}
}

// paint writes the visible part of v row by row, one Write per run of cells
// sharing a format. A double-width rune is written only when its right half
// is also visible; a half cut off by clipping or covered by an upper plate
// becomes a space so every row keeps its width.
func (s *Stack) paint(c Console, v *Viewport, rect, visible geometry.Rectangle) {
	var run strings.Builder
	row := make([]rowCell, visible.Width)
	for y := visible.Top; y < visible.Bottom(); y++ {
		c.SetCursorPosition(visible.Left, y)
		srcRow := y - rect.Top + v.FirstVisibleRow
		for i := range row {
			r, f := v.Plates.TakeCellFromStack(visible.Left+i-rect.Left+v.FirstVisibleColumn, srcRow)
			row[i] = rowCell{r, f}
		}

		run.Reset()
		var runFormat style.Format
		for i, cell := range row {
			r := cell.r
			switch {
			case r == plate.Continuation:
				if i > 0 && style.RuneWidth(row[i-1].r) == 2 {
					continue
				}
				r = ' '
			case style.RuneWidth(r) == 2:
				if i+1 >= len(row) || row[i+1].r != plate.Continuation {
					r = ' '
				}
			case style.RuneWidth(r) == 0:
				r = ' '
			}
			if run.Len() > 0 && cell.f != runFormat {
				c.Write(run.String(), runFormat)
				run.Reset()
			}
			runFormat = cell.f
			run.WriteRune(r)
		}
		if run.Len() > 0 {
			c.Write(run.String(), runFormat)
		}
	}
}

type rowCell struct {
	r rune
	f style.Format
}

func (s *Stack) placeCursor(c Console, screen geometry.Rectangle) {
	if s.cursorSet {
		if x, y, ok := s.ScreenPoint(s.cursorID, s.cursorCol, s.cursorRow); ok && screen.Contains(x, y) {
			c.SetCursorPosition(x, y)
			return
		}
	}
	if h, ok := c.(cursorHider); ok {
		h.HideCursor()
	}
}

// ScreenPoint maps content cell (col, row) of id to screen coordinates. ok is
// false when the cell is scrolled or clipped out of some viewport on the way
// to the root, or when id is not reachable from a root.
func (s *Stack) ScreenPoint(id ID, col, row int) (x, y int, ok bool) {
	seen := make(map[ID]bool)
	for id != NoID {
		v, exists := s.viewports[id]
		if !exists || seen[id] {
			return 0, 0, false
		}
		seen[id] = true
		if !v.VisibleContent().Contains(col, row) {
			return 0, 0, false
		}
		col = v.Left + col - v.FirstVisibleColumn
		row = v.Top + row - v.FirstVisibleRow
		id = s.tree.Parent(id)
	}
	return col, row, true
}
