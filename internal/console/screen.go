package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/five82/layerterm/internal/style"
)

// Screen adapts a tcell.Screen to the viewport Console.
type Screen struct {
	screen   tcell.Screen
	col, row int
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Size returns the screen dimensions.
func (c *Screen) Size() (width, height int) { return c.screen.Size() }

// SetCursorPosition moves the write cursor and the terminal cursor.
func (c *Screen) SetCursorPosition(col, row int) {
	c.col, c.row = col, row
	c.screen.ShowCursor(col, row)
}

// HideCursor hides the terminal cursor.
func (c *Screen) HideCursor() {
	c.screen.HideCursor()
}

// Write puts text at the cursor, advancing it by each rune's cell width. A
// double-width rune that does not fit inside the row is drawn as spaces.
func (c *Screen) Write(text string, f style.Format) {
	st := tcellStyle(f)
	w, h := c.screen.Size()
	if c.row < 0 || c.row >= h {
		c.col += style.TextWidth(text)
		return
	}
	for _, r := range text {
		rw := style.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if rw == 2 && (c.col < 0 || c.col+1 >= w) {
			c.set(c.col, w, ' ', st)
			c.set(c.col+1, w, ' ', st)
		} else {
			c.set(c.col, w, r, st)
		}
		c.col += rw
	}
}

func (c *Screen) set(x, width int, r rune, st tcell.Style) {
	if x >= 0 && x < width {
		c.screen.SetContent(x, c.row, r, nil, st)
	}
}

// Show flushes pending changes to the terminal.
func (c *Screen) Show() {
	c.screen.Show()
}

func tcellStyle(f style.Format) tcell.Style {
	st := tcell.StyleDefault.Bold(f.Bold).Underline(f.Underline).Reverse(f.Reverse)
	if f.Foreground != "" {
		st = st.Foreground(tcell.GetColor(f.Foreground))
	}
	if f.Background != "" {
		st = st.Background(tcell.GetColor(f.Background))
	}
	return st
}
