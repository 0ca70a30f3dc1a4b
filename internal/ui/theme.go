package ui

import (
	"github.com/five82/layerterm/internal/logtail"
	"github.com/five82/layerterm/internal/style"
)

// Theme defines the palette of the demo scene.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Pane backgrounds
	SurfaceAlt string // Field and viewer text background
	FocusBg    string // Focused field background

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Formats holds the cell formats derived from a theme.
type Formats struct {
	Background  style.Format
	Frame       style.Format
	Title       style.Format
	Help        style.Format
	Pane        style.Format
	PaneBorder  style.Format
	FieldBorder style.Format
	FocusBorder style.Format
	Label       style.Format
	FocusLabel  style.Format
	Input       style.Format
	FocusInput  style.Format
	Viewer      style.Format

	levels map[logtail.Level]style.Format
}

// Formats returns the cell formats for this theme.
func (t Theme) Formats() Formats {
	onBackground := style.Default.WithBackground(t.Background)
	onSurface := style.Default.WithBackground(t.Surface)
	onText := style.Default.WithBackground(t.SurfaceAlt)

	return Formats{
		Background:  onBackground,
		Frame:       onBackground.WithForeground(t.Border),
		Title:       onBackground.WithForeground(t.Accent).WithBold(true),
		Help:        onBackground.WithForeground(t.Muted),
		Pane:        onSurface.WithForeground(t.Text),
		PaneBorder:  onSurface.WithForeground(t.Border),
		FieldBorder: onSurface.WithForeground(t.BorderMuted),
		FocusBorder: onSurface.WithForeground(t.BorderFocus),
		Label:       onSurface.WithForeground(t.Muted),
		FocusLabel:  onSurface.WithForeground(t.Accent).WithBold(true),
		Input:       onText.WithForeground(t.Text),
		FocusInput:  style.Default.WithForeground(t.Text).WithBackground(t.FocusBg),
		Viewer:      onText.WithForeground(t.Text),

		levels: map[logtail.Level]style.Format{
			logtail.LevelDebug: onText.WithForeground(t.Faint),
			logtail.LevelInfo:  onText.WithForeground(t.Info),
			logtail.LevelWarn:  onText.WithForeground(t.Warning),
			logtail.LevelError: onText.WithForeground(t.Danger).WithBold(true),
		},
	}
}

// Line returns the viewer format for a line of the given level.
func (f Formats) Line(level logtail.Level) style.Format {
	if lf, ok := f.levels[level]; ok {
		return lf
	}
	return f.Viewer
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name, Dracula when unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func draculaTheme() Theme {
	// Official Dracula palette
	return Theme{
		Name: "Dracula",

		Background: "#191A21", // BGDarker
		Surface:    "#282A36", // Background
		SurfaceAlt: "#21222C", // BGDark
		FocusBg:    "#343746", // BGLight

		Border:      "#44475A", // Selection
		BorderMuted: "#6272A4", // Comment
		BorderFocus: "#BD93F9", // Purple

		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Success: "#50FA7B",
		Warning: "#FFB86C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		Border:      "#334155", // slate-700
		BorderMuted: "#475569", // slate-600
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#22c55e",
		Warning: "#f59e0b",
		Danger:  "#ef4444",
		Info:    "#06b6d4",
	}
}
