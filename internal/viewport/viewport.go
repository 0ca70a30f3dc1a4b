package viewport

import (
	"github.com/five82/layerterm/internal/geometry"
	"github.com/five82/layerterm/internal/plate"
	"github.com/five82/layerterm/internal/style"
)

// ID identifies a viewport within a Stack. The zero ID means "none".
type ID int

// NoID is the Container value of a root viewport.
const NoID ID = 0

// Console is the output surface. Write emits text at the cursor and advances
// it by the cell width of each rune; the last SetCursorPosition of a frame is
// where the terminal cursor is shown.
type Console interface {
	Size() (width, height int)
	SetCursorPosition(col, row int)
	Write(text string, f style.Format)
}

// cursorHider is implemented by consoles that can hide the terminal cursor.
type cursorHider interface {
	HideCursor()
}

// Viewport is a scrollable window onto a plate stack.
type Viewport struct {
	Left, Top     int
	Width, Height int
	Plates        *plate.Stack

	FirstVisibleColumn int
	FirstVisibleRow    int

	Container ID
}

// Rect returns the viewport's rectangle in its parent's content coordinates.
func (v Viewport) Rect() geometry.Rectangle {
	return geometry.NewRectangle(v.Left, v.Top, v.Width, v.Height)
}

// VisibleContent returns the part of the plate stack currently shown.
func (v Viewport) VisibleContent() geometry.Rectangle {
	return geometry.NewRectangle(v.FirstVisibleColumn, v.FirstVisibleRow, v.Width, v.Height)
}
