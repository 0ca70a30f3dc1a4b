package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the demo's key bindings. Keys not bound here go to the
// focused field.
type keyMap struct {
	Quit       key.Binding
	CycleTheme key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// ShortHelp returns key bindings for the help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.PageDown, k.PageUp, k.CycleTheme, k.Quit}
}

// HelpLine renders the short help as one line of text.
func (k keyMap) HelpLine() string {
	parts := make([]string, 0, len(k.ShortHelp()))
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return " " + strings.Join(parts, " · ") + " "
}
