package plate

import "github.com/five82/layerterm/internal/style"

// Stack composites plates. The last plate is the top layer. A Stack does not
// own its plates and never writes to them.
type Stack struct {
	plates []*Plate
}

// NewStack returns a stack of plates listed bottom to top. Nil plates are
// skipped.
func NewStack(plates ...*Plate) *Stack {
	s := &Stack{plates: make([]*Plate, 0, len(plates))}
	for _, p := range plates {
		if p != nil {
			s.plates = append(s.plates, p)
		}
	}
	return s
}

// Plates returns the plates bottom to top.
func (s *Stack) Plates() []*Plate {
	return append([]*Plate(nil), s.plates...)
}

// Size returns the extent covered by any plate.
func (s *Stack) Size() (width, height int) {
	for _, p := range s.plates {
		w, h := p.Size()
		width, height = max(width, w), max(height, h)
	}
	return width, height
}

// TakeCharacterFromStack returns the visible rune at (x, y): the topmost
// non-transparent cell, or a space when every plate is transparent there.
func (s *Stack) TakeCharacterFromStack(x, y int) rune {
	r, _ := s.TakeCellFromStack(x, y)
	return r
}

// TakeCellFromStack is TakeCharacterFromStack with the cell's format. The
// right half of a double-width rune comes back as Continuation.
func (s *Stack) TakeCellFromStack(x, y int) (rune, style.Format) {
	for i := len(s.plates) - 1; i >= 0; i-- {
		if p := s.plates[i]; !p.Transparent(x, y) {
			return p.Cell(x, y)
		}
	}
	return ' ', style.Default
}
