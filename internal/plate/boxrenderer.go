package plate

import "github.com/five82/layerterm/internal/box"

// BoxRenderer paints box maps onto plates.
type BoxRenderer struct{}

// NewBoxRenderer returns a BoxRenderer.
func NewBoxRenderer() BoxRenderer { return BoxRenderer{} }

// Render writes every selected glyph of m onto p at the same coordinates.
// Empty requests leave the plate cell untouched.
func (BoxRenderer) Render(m *box.BoxMap, p *Plate) {
	m.Each(func(x, y int, q box.BoxCharRequest) {
		if q.Empty() {
			return
		}
		if x < 0 || y < 0 || x >= p.width || y >= p.height {
			return
		}
		p.WriteText(x, y, string(q.Rune()), q.Format)
	})
}
