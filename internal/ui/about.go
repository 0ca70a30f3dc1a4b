package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/layerterm/internal/box"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

var helpSections = []helpSection{
	{
		title: "Form",
		items: []helpItem{
			{"tab / down", "Next field"},
			{"shift+tab / up", "Previous field"},
			{"left / right", "Move cursor"},
			{"home / end", "Start / end of field"},
		},
	},
	{
		title: "Viewer",
		items: []helpItem{
			{"pgdown", "Page down"},
			{"pgup", "Page up"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"ctrl+t", "Cycle theme"},
			{"esc / ctrl+c", "Quit"},
		},
	},
}

// AboutText is shown in the viewer when no file is configured: the key
// bindings followed by the box glyph catalogue grouped by shape.
func AboutText(reg *box.Registry) []string {
	var lines []string
	lines = append(lines, "layerterm", "")
	for _, sec := range helpSections {
		lines = append(lines, sec.title)
		for _, it := range sec.items {
			lines = append(lines, fmt.Sprintf("  %-16s %s", it.key, it.desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("Glyph catalogue: %d usable, %d excluded", len(reg.Usable()), len(reg.Excluded())), "")
	for _, shape := range box.Shapes {
		chars := reg.Bucket(shape)
		var glyphs strings.Builder
		for _, c := range chars {
			glyphs.WriteRune(c.Source)
			glyphs.WriteByte(' ')
		}
		lines = append(lines, fmt.Sprintf("  %-12s %2d  %s", shape, len(chars), strings.TrimSpace(glyphs.String())))
	}
	lines = append(lines, "")

	lines = append(lines, "Excluded")
	for _, c := range reg.Excluded() {
		lines = append(lines, fmt.Sprintf("  %c  %s", c.Source, c.Name))
	}
	lines = append(lines, "")

	// A few sample log lines to show level colors.
	now := time.Date(2025, 10, 8, 21, 1, 5, 0, time.UTC).Format(time.DateTime)
	lines = append(lines,
		now+" DEBUG\tregistry built",
		now+" INFO\tscene laid out",
		now+" WARN\tdouble arc corners do not exist; gaps are expected",
		now+" ERROR\tsample error line",
	)
	return lines
}
