package plate

import "github.com/five82/layerterm/internal/style"

const (
	// Unset marks a transparent cell.
	Unset rune = 0
	// Continuation marks the right half of a double-width rune. It is opaque
	// and draws nothing of its own.
	Continuation rune = -1
)

// Plate is a fixed-size layer of runes and formats.
type Plate struct {
	width, height int
	chars         []rune
	formats       []style.Format
}

// New returns a fully transparent plate. Negative sizes become zero.
func New(width, height int) *Plate {
	width, height = max(width, 0), max(height, 0)
	return &Plate{
		width:   width,
		height:  height,
		chars:   make([]rune, width*height),
		formats: make([]style.Format, width*height),
	}
}

// Size returns the plate dimensions.
func (p *Plate) Size() (width, height int) { return p.width, p.height }

// WriteText copies text into the plate starting at the cell (x, y). Text is
// laid out linearly and is not wrapped per row: writing past the end of a row
// continues on the next one. A double-width rune takes two cells, the second
// holding Continuation; zero-width runes are skipped. Cells falling outside
// the backing array are dropped.
func (p *Plate) WriteText(x, y int, text string, f style.Format) {
	i := y*p.width + x
	for _, r := range text {
		w := style.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.setIndex(i, r, f)
		if w == 2 {
			p.setIndex(i+1, Continuation, f)
		}
		i += w
	}
}

// WriteLabel writes text on row y from column x, truncated to maxWidth display
// cells and clipped to the row. A double-width rune that would straddle the
// row end is left out. It returns the number of cells written.
func (p *Plate) WriteLabel(x, y int, text string, maxWidth int, f style.Format) int {
	if y < 0 || y >= p.height || maxWidth <= 0 {
		return 0
	}
	text = style.Truncate(text, maxWidth, "…")
	limit := min(maxWidth, p.width-x)
	n := 0
	for _, r := range text {
		w := style.RuneWidth(r)
		if w == 0 {
			continue
		}
		if n+w > limit {
			break
		}
		p.Set(x+n, y, r, f)
		if w == 2 {
			p.Set(x+n+1, y, Continuation, f)
		}
		n += w
	}
	return n
}

func (p *Plate) setIndex(i int, r rune, f style.Format) {
	if i >= 0 && i < len(p.chars) {
		p.chars[i] = r
		p.formats[i] = f
	}
}

// Set stores one cell. Off-plate writes are dropped.
func (p *Plate) Set(x, y int, r rune, f style.Format) {
	if i, ok := p.index(x, y); ok {
		p.chars[i] = r
		p.formats[i] = f
	}
}

// Cell returns the rune and format at (x, y). Off-plate cells are Unset.
func (p *Plate) Cell(x, y int) (rune, style.Format) {
	i, ok := p.index(x, y)
	if !ok {
		return Unset, style.Default
	}
	return p.chars[i], p.formats[i]
}

// Transparent reports whether (x, y) holds no rune.
func (p *Plate) Transparent(x, y int) bool {
	r, _ := p.Cell(x, y)
	return r == Unset
}

// Fill sets every cell to r with format f.
func (p *Plate) Fill(r rune, f style.Format) {
	for i := range p.chars {
		p.chars[i] = r
		p.formats[i] = f
	}
}

// FillRect sets the cells of a rectangle, clipped to the plate.
func (p *Plate) FillRect(x, y, width, height int, r rune, f style.Format) {
	for row := max(y, 0); row < min(y+height, p.height); row++ {
		for col := max(x, 0); col < min(x+width, p.width); col++ {
			i := row*p.width + col
			p.chars[i] = r
			p.formats[i] = f
		}
	}
}

// Clear makes every cell transparent again.
func (p *Plate) Clear() {
	p.Fill(Unset, style.Default)
}

func (p *Plate) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0, false
	}
	return y*p.width + x, true
}
