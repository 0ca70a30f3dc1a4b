package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/layerterm/internal/style"
)

const (
	// fieldCharLimit is the most runes a field accepts.
	fieldCharLimit = 95
	// fieldCapacity is the width of a field's plate: room for a full field of
	// double-width runes and the cursor after the last one.
	fieldCapacity = 2*fieldCharLimit + 1
)

// Field is one labelled text input of the form pane.
type Field struct {
	Label string
	input textinput.Model
}

func newField(label, value string) *Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = fieldCharLimit
	ti.SetValue(value)
	ti.CursorStart()
	return &Field{Label: label, input: ti}
}

// Value returns the current text.
func (f *Field) Value() string { return f.input.Value() }

// Position returns the cursor offset in runes.
func (f *Field) Position() int { return f.input.Position() }

// Column returns the cell column of the cursor, counting double-width runes
// as two cells.
func (f *Field) Column() int {
	runes := []rune(f.input.Value())
	return style.TextWidth(string(runes[:min(f.input.Position(), len(runes))]))
}

// Focused reports whether the field accepts input.
func (f *Field) Focused() bool { return f.input.Focused() }

func (f *Field) focus() tea.Cmd { return f.input.Focus() }

func (f *Field) blur() { f.input.Blur() }

func (f *Field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func defaultFields() []*Field {
	return []*Field{
		newField("Name", "Ada Lovelace"),
		newField("Email", "ada@example.org"),
		newField("Phone", "+44 20 7946 0000"),
		newField("Street", "12 St James's Square"),
		newField("City", "London"),
		newField("Region", ""),
		newField("Postal code", "SW1Y 4JH"),
		newField("Country", "United Kingdom"),
		newField("Company", "Analytical Engines Ltd"),
		newField("Title", "Programmer"),
		newField("Website", "https://example.org/notes/on-the-analytical-engine"),
		newField("Notes", "Fields scroll sideways once the text outgrows the box, following the cursor."),
	}
}
