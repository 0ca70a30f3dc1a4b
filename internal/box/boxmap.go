package box

import "github.com/five82/layerterm/internal/style"

// BoxRegion requests one rectangular border. Regions may extend past the
// target surface; clipping happens when the map is built.
type BoxRegion struct {
	X, Y          int
	Width, Height int
	Weight        LineWeight
	Count         LineCount
	Dash          DashType
	Corner        CornerType
	Format        style.Format
}

// NewBoxRegion returns a light single square border with a zero format.
func NewBoxRegion(x, y, width, height int) BoxRegion {
	return BoxRegion{X: x, Y: y, Width: width, Height: height}
}

// Edge returns the line style the region asks for.
func (r BoxRegion) Edge() Edge {
	return Edge{Weight: r.Weight, Count: r.Count, Dash: r.Dash}
}

// BoxCharRequest is one cell of a box map. The zero value draws nothing.
type BoxCharRequest struct {
	Char   *BoxCharacter
	Left   *Edge
	Right  *Edge
	Up     *Edge
	Down   *Edge
	Format style.Format
}

// Empty reports whether no glyph was selected for the cell.
func (q BoxCharRequest) Empty() bool {
	return q.Char == nil
}

// Rune returns the selected glyph, or 0 for an empty request.
func (q BoxCharRequest) Rune() rune {
	if q.Char == nil {
		return 0
	}
	return q.Char.Source
}

// BoxMap is a dense row-major grid of box requests.
type BoxMap struct {
	width, height int
	cells         []BoxCharRequest
}

// NewBoxMap returns an empty map. Negative sizes are treated as zero.
func NewBoxMap(width, height int) *BoxMap {
	width, height = max(width, 0), max(height, 0)
	return &BoxMap{width: width, height: height, cells: make([]BoxCharRequest, width*height)}
}

// Size returns the map dimensions.
func (m *BoxMap) Size() (width, height int) { return m.width, m.height }

// Index returns y*width+x and whether (x, y) lies on the grid.
func (m *BoxMap) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	return y*m.width + x, true
}

// At returns the request at (x, y); off-grid cells are empty.
func (m *BoxMap) At(x, y int) BoxCharRequest {
	i, ok := m.Index(x, y)
	if !ok {
		return BoxCharRequest{}
	}
	return m.cells[i]
}

// Set stores a request. Off-grid writes are dropped.
func (m *BoxMap) Set(x, y int, q BoxCharRequest) {
	if i, ok := m.Index(x, y); ok {
		m.cells[i] = q
	}
}

// Each calls fn for every cell in row-major order.
func (m *BoxMap) Each(fn func(x, y int, q BoxCharRequest)) {
	for i, q := range m.cells {
		fn(i%m.width, i/m.width, q)
	}
}
