// Package style holds the display format carried by every drawn cell and the
// cell width rules shared by plates and consoles.
package style

// Format is how a cell is displayed. Colors are "#rrggbb" hex strings, the
// same form the themes use; an empty color means the terminal default.
type Format struct {
	Foreground string
	Background string
	Bold       bool
	Underline  bool
	Reverse    bool
}

// Default is the zero format.
var Default = Format{}

// WithForeground returns a copy using color as foreground.
func (f Format) WithForeground(color string) Format {
	f.Foreground = color
	return f
}

// WithBackground returns a copy using color as background.
func (f Format) WithBackground(color string) Format {
	f.Background = color
	return f
}

// WithBold returns a copy with bold set to b.
func (f Format) WithBold(b bool) Format {
	f.Bold = b
	return f
}

// WithReverse returns a copy with reverse video set to b.
func (f Format) WithReverse(b bool) Format {
	f.Reverse = b
	return f
}
