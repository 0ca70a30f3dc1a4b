package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/layerterm/internal/style"
)

// Continuation is the rune held by the right half of a double-width rune.
const Continuation rune = -1

// Cell is one console cell.
type Cell struct {
	Rune   rune
	Format style.Format
}

// Buffer is an in-memory console.
type Buffer struct {
	width, height int
	cells         []Cell
	col, row      int
	cursorVisible bool
}

// NewBuffer returns a blank width x height buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: max(width, 0), height: max(height, 0)}
	b.cells = make([]Cell, b.width*b.height)
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// SetCursorPosition moves the write cursor and shows the cursor there.
func (b *Buffer) SetCursorPosition(col, row int) {
	b.col, b.row = col, row
	b.cursorVisible = true
}

// HideCursor hides the cursor until the next SetCursorPosition.
func (b *Buffer) HideCursor() {
	b.cursorVisible = false
}

// Cursor returns the cursor position and whether it is shown.
func (b *Buffer) Cursor() (col, row int, visible bool) {
	return b.col, b.row, b.cursorVisible
}

// Write stores text at the cursor, advancing it by each rune's cell width. A
// double-width rune fills its cell and a Continuation cell; one that does not
// fit inside the row is stored as spaces. Zero-width runes are dropped.
func (b *Buffer) Write(text string, f style.Format) {
	for _, r := range text {
		switch style.RuneWidth(r) {
		case 0:
			continue
		case 1:
			b.put(b.col, r, f)
			b.col++
		case 2:
			head, tail := r, Continuation
			if b.col < 0 || b.col+1 >= b.width {
				head, tail = ' ', ' '
			}
			b.put(b.col, ' ', f)
			b.put(b.col+1, tail, f)
			b.put(b.col, head, f)
			b.col += 2
		}
	}
}

// put stores one cell on the cursor row. A double-width rune it partly
// overwrites loses its other half to a space.
func (b *Buffer) put(x int, r rune, f style.Format) {
	if x < 0 || x >= b.width || b.row < 0 || b.row >= b.height {
		return
	}
	i := b.row*b.width + x
	switch old := b.cells[i].Rune; {
	case old == Continuation && r != Continuation && x > 0:
		b.cells[i-1].Rune = ' '
	case style.RuneWidth(old) == 2 && x+1 < b.width && b.cells[i+1].Rune == Continuation:
		b.cells[i+1].Rune = ' '
	}
	b.cells[i] = Cell{Rune: r, Format: f}
}

// Cell returns the cell at (x, y); off-buffer cells are blank.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// Line returns row y as plain text.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != Continuation {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// String returns the whole buffer as plain text, rows separated by newlines.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Styled renders the buffer with lipgloss, one styled span per run of cells
// sharing a format. A visible cursor is drawn in reverse video.
func (b *Buffer) Styled() string {
	lines := make([]string, b.height)
	var run strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		run.Reset()
		var runFormat style.Format
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			f := c.Format
			if b.cursorVisible && x == b.col && y == b.row {
				f = f.WithReverse(!f.Reverse)
			}
			if run.Len() > 0 && f != runFormat {
				line.WriteString(lipglossStyle(runFormat).Render(run.String()))
				run.Reset()
			}
			runFormat = f
			if c.Rune != Continuation {
				run.WriteRune(c.Rune)
			}
		}
		if run.Len() > 0 {
			line.WriteString(lipglossStyle(runFormat).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func lipglossStyle(f style.Format) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(f.Bold).Underline(f.Underline).Reverse(f.Reverse)
	if f.Foreground != "" {
		s = s.Foreground(lipgloss.Color(f.Foreground))
	}
	if f.Background != "" {
		s = s.Background(lipgloss.Color(f.Background))
	}
	return s
}
