// Package console provides the output surfaces the viewport stack renders to.
//
// Buffer keeps a cell grid in memory. Its String form is plain text and its
// Styled form is a lipgloss-rendered string suitable for a bubbletea View.
// Screen writes straight to a tcell.Screen.
//
// Both advance the write cursor by one cell per rune and never wrap; runes past
// the right edge are dropped.
package console
