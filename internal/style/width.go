package style

import "github.com/mattn/go-runewidth"

// cells measures runes with ambiguous East Asian width (box drawing among
// them) as one cell whatever the locale, the same way lipgloss measures
// rendered rows.
var cells = &runewidth.Condition{StrictEmojiNeutral: true}

// RuneWidth returns the number of cells r occupies: 0, 1 or 2.
func RuneWidth(r rune) int {
	return cells.RuneWidth(r)
}

// TextWidth returns the number of cells text occupies when laid out one rune
// at a time. Zero-width runes add nothing.
func TextWidth(text string) int {
	n := 0
	for _, r := range text {
		n += cells.RuneWidth(r)
	}
	return n
}

// Truncate shortens text to at most width cells, ending it with tail when
// anything was cut.
func Truncate(text string, width int, tail string) string {
	return cells.Truncate(text, width, tail)
}
